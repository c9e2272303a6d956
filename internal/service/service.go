package service

import (
	"github.com/mkalan/bankist/internal/config"
	"github.com/mkalan/bankist/internal/store"
)

// TxRunner runs a function inside a single database transaction. The
// sqlite store implements it; both legs of a transfer go through it.
type TxRunner interface {
	ExecTx(fn func(store.Repository) error) error
}

type Service struct {
	Account *AccountService
	Session *Session
}

func NewService(repo store.Repository, tx TxRunner, cfg *config.Config) *Service {
	accounts := NewAccountService(repo, cfg)
	return &Service{
		Account: accounts,
		Session: NewSession(accounts, repo, tx),
	}
}
