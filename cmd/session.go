package cmd

import (
	"errors"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mkalan/bankist/internal/config"
	"github.com/mkalan/bankist/internal/errhandler"
	"github.com/mkalan/bankist/internal/service"
	"github.com/mkalan/bankist/internal/ui"
	"github.com/mkalan/bankist/internal/ui/prompts"
	"github.com/mkalan/bankist/internal/ui/views"
)

type sessionRunner struct {
	svc      *service.Service
	currency string

	// Display preference only; never stored on the session.
	sortedByAmount bool
}

func NewSessionCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"s", "login"},
		Short:   "Start an interactive banking session",
		Long: `Start an interactive banking session.

Log in with one of the seeded demo accounts (see 'bankist accounts'),
then view movements and the account summary, transfer money, request
a loan, or close the account.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &sessionRunner{
				svc:      svc,
				currency: cfg.Defaults.Currency,
			}
			return runner.Run()
		},
	}

	return cmd
}

func (r *sessionRunner) Run() error {
	ui.PrintL1Title("Bankist")

	for {
		if err := r.loginLoop(); err != nil {
			return filterAborted(err)
		}

		if err := r.sessionLoop(); err != nil {
			return filterAborted(err)
		}

		again := false
		err := huh.NewConfirm().
			Title("Log in again?").
			Affirmative("Yes").
			Negative("No").
			Value(&again).
			Run()
		if err != nil {
			return filterAborted(err)
		}
		if !again {
			return nil
		}
	}
}

// loginLoop prompts until a login succeeds. Bad credentials only print
// a warning; there is no retry limit.
func (r *sessionRunner) loginLoop() error {
	for {
		input, err := prompts.PromptLogin()
		if err != nil {
			return err
		}

		acc, err := r.svc.Session.Login(input.Username, input.PIN)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				pterm.Warning.Println("Invalid username or PIN")
				continue
			}
			return err
		}

		pterm.Success.Printf("Welcome back, %s\n", acc.FirstName())
		r.sortedByAmount = false
		return nil
	}
}

// sessionLoop runs the menu until the user logs out or the account is
// closed. Domain errors are warnings; the session stays alive.
func (r *sessionRunner) sessionLoop() error {
	if err := r.showStatement(); err != nil {
		return err
	}

	for r.svc.Session.LoggedIn() {
		action, err := prompts.PromptAction()
		if err != nil {
			return err
		}

		switch action {
		case prompts.ActionMovements:
			err = r.showMovements()
		case prompts.ActionSort:
			r.sortedByAmount = !r.sortedByAmount
			err = r.showMovements()
		case prompts.ActionSummary:
			err = r.showSummary()
		case prompts.ActionTransfer:
			err = r.transfer()
		case prompts.ActionLoan:
			err = r.requestLoan()
		case prompts.ActionClose:
			err = r.closeAccount()
		case prompts.ActionLogout:
			r.svc.Session.Logout()
			pterm.Info.Println("Logged out")
			return nil
		}

		if err != nil {
			if warnDomainError(err) {
				continue
			}
			return err
		}
	}

	return nil
}

// showStatement renders movements and summary together, the post-login
// screen of the original demo.
func (r *sessionRunner) showStatement() error {
	if err := r.showMovements(); err != nil {
		return err
	}
	return r.showSummary()
}

func (r *sessionRunner) showMovements() error {
	movements, err := r.svc.Session.Movements(r.sortedByAmount)
	if err != nil {
		return err
	}
	return views.NewMovementsView().Render(movements, r.currency, r.sortedByAmount)
}

func (r *sessionRunner) showSummary() error {
	summary, err := r.svc.Session.Summary()
	if err != nil {
		return err
	}
	views.RenderSummary(summary, r.currency)
	return nil
}

func (r *sessionRunner) transfer() error {
	accounts, err := r.svc.Account.GetAllAccounts()
	if err != nil {
		return err
	}

	input, err := prompts.PromptTransfer(accounts)
	if err != nil {
		return err
	}

	if err := r.svc.Session.Transfer(input.ToUsername, input.Amount); err != nil {
		return err
	}

	pterm.Success.Printf("Transferred to %s\n", input.ToUsername)
	return r.showStatement()
}

func (r *sessionRunner) requestLoan() error {
	amount, err := prompts.PromptLoanAmount()
	if err != nil {
		return err
	}

	if err := r.svc.Session.RequestLoan(amount); err != nil {
		return err
	}

	pterm.Success.Println("Loan approved")
	return r.showStatement()
}

func (r *sessionRunner) closeAccount() error {
	input, err := prompts.PromptCloseAccount()
	if err != nil {
		if errors.Is(err, prompts.ErrAborted) {
			pterm.Info.Println("Account not closed")
			return nil
		}
		return err
	}

	if err := r.svc.Session.CloseAccount(input.Username, input.PIN); err != nil {
		return err
	}

	pterm.Success.Println("Account closed")
	return nil
}

// warnDomainError prints recoverable banking errors as warnings and
// reports whether the error was one of them.
func warnDomainError(err error) bool {
	for _, domainErr := range []error{
		service.ErrInvalidCredentials,
		service.ErrInvalidAmount,
		service.ErrUnknownRecipient,
		service.ErrSelfTransfer,
		service.ErrInsufficientBalance,
		service.ErrLoanIneligible,
		service.ErrAccountNotFound,
	} {
		if errors.Is(err, domainErr) {
			pterm.Warning.Println(capitalize(err.Error()))
			return true
		}
	}
	return false
}

// filterAborted turns prompt cancellations (Ctrl-C, Esc) into a clean
// exit instead of an error.
func filterAborted(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted) {
		errhandler.HandleError(terminal.InterruptErr)
		return nil
	}
	return err
}
