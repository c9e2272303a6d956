package service

import (
	"errors"
	"fmt"

	"github.com/mkalan/bankist/internal/config"
	"github.com/mkalan/bankist/internal/ledger"
	"github.com/mkalan/bankist/internal/model"
	"github.com/mkalan/bankist/internal/store"
)

// AccountService is the account directory: lookup, listing, removal
// and the derived per-account figures.
type AccountService struct {
	repo   store.Repository
	config *config.Config
}

func NewAccountService(repo store.Repository, cfg *config.Config) *AccountService {
	return &AccountService{repo: repo, config: cfg}
}

func (as *AccountService) GetAllAccounts() ([]*model.Account, error) {
	accounts, err := as.repo.GetAllAccounts()
	if err != nil {
		return nil, err
	}

	out := make([]*model.Account, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, toModelAccount(acc))
	}
	return out, nil
}

func (as *AccountService) FindByUsername(username string) (*model.Account, error) {
	acc, err := as.repo.GetAccountByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return toModelAccount(acc), nil
}

// Movements returns an account's movement list. sortedByAmount asks the
// store for the ascending-by-amount projection; the stored order stays
// chronological either way.
func (as *AccountService) Movements(accountID int64, sortedByAmount bool) ([]model.Movement, error) {
	movements, err := as.repo.ListMovements(accountID, sortedByAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to get movements: %w", err)
	}

	out := make([]model.Movement, 0, len(movements))
	for _, mov := range movements {
		out = append(out, toModelMovement(mov))
	}
	return out, nil
}

// Summarize computes the ledger summary for one account.
func (as *AccountService) Summarize(acc *model.Account) (ledger.Summary, error) {
	movements, err := as.Movements(acc.ID, false)
	if err != nil {
		return ledger.Summary{}, err
	}
	return ledger.Summarize(movements, acc.InterestRate), nil
}

func toModelAccount(acc *store.Account) *model.Account {
	return &model.Account{
		ID:           acc.ID,
		Owner:        acc.Owner,
		Username:     acc.Username,
		InterestRate: acc.InterestRate,
		PIN:          acc.PIN,
	}
}

func toModelMovement(mov *store.Movement) model.Movement {
	return model.Movement{
		ID:        mov.ID,
		AccountID: mov.AccountID,
		Amount:    mov.Amount,
		Timestamp: mov.Timestamp,
		Note:      mov.Note,
	}
}
