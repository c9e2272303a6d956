package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkalan/bankist/internal/service"
	"github.com/mkalan/bankist/internal/ui/views"
)

func NewAccountsCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"ls"},
		Short:   "List the seeded demo accounts",
		Long: `List the seeded demo accounts with their usernames.

Usernames are the lowercased initials of the owner's name; PINs are
the classic demo ones (1111, 2222, ...).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := svc.Account.GetAllAccounts()
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}
			return views.NewAccountListView().Render(accounts)
		},
	}

	return cmd
}
