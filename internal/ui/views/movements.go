package views

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/mkalan/bankist/internal/constants"
	"github.com/mkalan/bankist/internal/model"
	"github.com/mkalan/bankist/internal/utils"
)

type MovementsView struct{}

func NewMovementsView() *MovementsView {
	return &MovementsView{}
}

func (v *MovementsView) Render(movements []model.Movement, currency string, sortedByAmount bool) error {
	if len(movements) == 0 {
		pterm.Warning.Println("No movements found")
		return nil
	}

	if sortedByAmount {
		pterm.DefaultSection.Println("Movements (sorted by amount)")
	} else {
		pterm.DefaultSection.Println("Movements")
	}

	tableData := pterm.TableData{
		{"#", "Date", "Type", "Amount", "Note"},
	}

	for i, mov := range movements {
		var movType, coloredAmount string

		amountStr := fmt.Sprintf("%s %s", utils.FormatFromCents(mov.Amount), currency)
		if mov.Deposit() {
			movType = pterm.Green("deposit")
			coloredAmount = pterm.Green(amountStr)
		} else {
			movType = pterm.Red("withdrawal")
			coloredAmount = pterm.Red(amountStr)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", i+1),
			time.Unix(mov.Timestamp, 0).Format(constants.DateFormat),
			movType,
			coloredAmount,
			mov.Note,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d movements\n", len(movements))
	return nil
}
