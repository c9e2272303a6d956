package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/mkalan/bankist/internal/ledger"
	"github.com/mkalan/bankist/internal/utils"
)

// RenderSummary prints the derived account figures: current balance,
// totals in and out, and the credited interest.
func RenderSummary(summary ledger.Summary, currency string) {
	pterm.DefaultSection.Println("Summary")

	format := func(cents int64) string {
		return fmt.Sprintf("%s %s", utils.FormatFromCents(cents), currency)
	}

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Balance", format(summary.Balance)},
		{"In", pterm.Green(format(summary.Deposits))},
		{"Out", pterm.Red(format(summary.Withdrawals))},
		{"Interest", format(summary.Interest)},
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		pterm.Error.Println(err)
	}
}
