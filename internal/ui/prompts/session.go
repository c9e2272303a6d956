package prompts

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"

	"github.com/mkalan/bankist/internal/model"
	"github.com/mkalan/bankist/internal/ui"
	"github.com/mkalan/bankist/internal/validation"
)

// Menu actions for the interactive session.
const (
	ActionMovements = "View movements"
	ActionSort      = "Toggle movement sorting"
	ActionSummary   = "View summary"
	ActionTransfer  = "Transfer money"
	ActionLoan      = "Request a loan"
	ActionClose     = "Close account"
	ActionLogout    = "Log out"
)

type LoginInput struct {
	Username string
	PIN      int
}

// PromptLogin asks for the login credentials. The PIN is typed blind.
func PromptLogin() (LoginInput, error) {
	var username, pin string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Validate(validation.ValidateUsername).
				Value(&username),
			huh.NewInput().
				Title("PIN").
				EchoMode(huh.EchoModePassword).
				Validate(validation.ValidatePIN).
				Value(&pin),
		),
	)

	if err := form.Run(); err != nil {
		return LoginInput{}, err
	}

	pinNum, err := validation.ParsePIN(pin)
	if err != nil {
		return LoginInput{}, err
	}

	return LoginInput{Username: username, PIN: pinNum}, nil
}

// PromptAction shows the session menu.
func PromptAction() (string, error) {
	options := []string{
		ActionMovements,
		ActionSort,
		ActionSummary,
		ActionTransfer,
		ActionLoan,
		ActionClose,
		ActionLogout,
	}

	var action string
	err := survey.AskOne(&survey.Select{
		Message:  "What would you like to do?",
		Options:  options,
		PageSize: len(options),
	}, &action, ui.IconOption())

	return action, err
}

type TransferInput struct {
	ToUsername string
	Amount     int64
}

// PromptTransfer picks a recipient from the directory and asks for the
// amount. The sender is offered too; self-transfers are rejected by
// the session controller, not hidden here, matching the original form.
func PromptTransfer(accounts []*model.Account) (TransferInput, error) {
	options := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		options = append(options, acc.Username)
	}

	var toUsername string
	err := survey.AskOne(&survey.Select{
		Message: "Transfer to:",
		Options: options,
	}, &toUsername, ui.IconOption())
	if err != nil {
		return TransferInput{}, err
	}

	var amountStr string
	err = huh.NewInput().
		Title("Amount").
		Validate(validation.ValidateAmount).
		Value(&amountStr).
		Run()
	if err != nil {
		return TransferInput{}, err
	}

	amount, err := validation.ParseAmount(amountStr)
	if err != nil {
		return TransferInput{}, err
	}

	return TransferInput{ToUsername: toUsername, Amount: amount}, nil
}

// PromptLoanAmount asks for the requested loan amount.
func PromptLoanAmount() (int64, error) {
	var amountStr string

	err := huh.NewInput().
		Title("Loan amount").
		Description("Needs one past movement of at least 10% of the request").
		Validate(validation.ValidateAmount).
		Value(&amountStr).
		Run()
	if err != nil {
		return 0, err
	}

	return validation.ParseAmount(amountStr)
}

// PromptCloseAccount re-asks the credentials as a confirmation before
// the account is removed.
func PromptCloseAccount() (LoginInput, error) {
	var username, pin string
	confirm := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Confirm username").
				Validate(validation.ValidateUsername).
				Value(&username),
			huh.NewInput().
				Title("Confirm PIN").
				EchoMode(huh.EchoModePassword).
				Validate(validation.ValidatePIN).
				Value(&pin),
			huh.NewConfirm().
				Title("This permanently removes the account. Continue?").
				Affirmative("Yes").
				Negative("No").
				Value(&confirm),
		),
	)

	if err := form.Run(); err != nil {
		return LoginInput{}, err
	}

	if !confirm {
		return LoginInput{}, ErrAborted
	}

	pinNum, err := validation.ParsePIN(pin)
	if err != nil {
		return LoginInput{}, err
	}

	return LoginInput{Username: username, PIN: pinNum}, nil
}
