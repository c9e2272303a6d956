package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/mkalan/bankist/internal/model"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

// Render lists the directory. PINs stay off screen; this view exists
// so a demo user can discover valid usernames.
func (v *AccountListView) Render(accounts []*model.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	pterm.DefaultSection.Println("Accounts")

	tableData := pterm.TableData{
		{"Owner", "Username", "Interest Rate"},
	}

	for _, acc := range accounts {
		tableData = append(tableData, []string{
			acc.Owner,
			acc.Username,
			fmt.Sprintf("%.1f%%", acc.InterestRate),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
	return nil
}
