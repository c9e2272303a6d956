package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mkalan/bankist/internal/config"
	"github.com/mkalan/bankist/internal/service"
	"github.com/mkalan/bankist/internal/ui"
)

func NewInfoCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show configuration and directory information",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := svc.Account.GetAllAccounts()
			if err != nil {
				return fmt.Errorf("failed to query accounts: %w", err)
			}

			dbPath := cfg.Database.Path
			if dbPath == "" {
				dbPath = "in-memory (fresh every run)"
			}

			ui.PrintL2Title("Bankist")

			tableData := pterm.TableData{
				{"Field", "Value"},
				{"Config file", cfg.ConfigPath},
				{"Database", dbPath},
				{"Currency", cfg.Defaults.Currency},
				{"Accounts", fmt.Sprintf("%d", len(accounts))},
			}

			return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
		},
	}

	return cmd
}
