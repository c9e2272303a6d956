// Package seed holds the compiled-in demo accounts. The directory is
// populated from these fixtures once per process start; nothing is
// ever added afterwards.
package seed

import (
	"fmt"
	"time"

	"github.com/mkalan/bankist/internal/constants"
	"github.com/mkalan/bankist/internal/model"
	"github.com/mkalan/bankist/internal/store"
)

type Fixture struct {
	Owner        string
	InterestRate float64
	PIN          int
	// Movements in whole currency units, chronological.
	Movements []int64
}

func Fixtures() []Fixture {
	return []Fixture{
		{
			Owner:        "Jonas Schmedtmann",
			Movements:    []int64{200, 450, -400, 3000, -650, -130, 70, 1300},
			InterestRate: 1.2,
			PIN:          1111,
		},
		{
			Owner:        "Jessica Davis",
			Movements:    []int64{5000, 3400, -150, -790, -3210, -1000, 8500, -30},
			InterestRate: 1.5,
			PIN:          2222,
		},
		{
			Owner:        "Steven Thomas Williams",
			Movements:    []int64{200, -200, 340, -300, -20, 50, 400, -460},
			InterestRate: 0.7,
			PIN:          3333,
		},
		{
			Owner:        "Sarah Smith",
			Movements:    []int64{430, 1000, 700, 50, 90},
			InterestRate: 1,
			PIN:          4444,
		},
	}
}

// Apply inserts every fixture whose derived username is not present
// yet. First write wins on a username clash; movements are converted
// to cents and appended in fixture order inside one transaction.
func Apply(tx interface {
	ExecTx(fn func(store.Repository) error) error
}) error {
	return tx.ExecTx(func(r store.Repository) error {
		now := time.Now().Unix()

		for _, f := range Fixtures() {
			username := model.DeriveUsername(f.Owner)

			exists, err := r.AccountExists(username)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			accountID, err := r.CreateAccount(f.Owner, username, f.InterestRate, f.PIN)
			if err != nil {
				return fmt.Errorf("failed to seed account '%s': %w", username, err)
			}

			for _, units := range f.Movements {
				_, err := r.AppendMovement(accountID, units*constants.CentsPerUnit, now, constants.NoteSeed)
				if err != nil {
					return fmt.Errorf("failed to seed movements for '%s': %w", username, err)
				}
			}
		}
		return nil
	})
}
