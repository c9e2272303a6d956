package service

import (
	"errors"
	"time"

	"github.com/mkalan/bankist/internal/constants"
	"github.com/mkalan/bankist/internal/ledger"
	"github.com/mkalan/bankist/internal/model"
	"github.com/mkalan/bankist/internal/store"
)

// Session is the controller for the single authenticated account of
// the process. It is either logged out (current == nil) or logged in,
// and mediates every mutating operation. All operations run to
// completion before the next one starts; there is no concurrent use.
type Session struct {
	accounts *AccountService
	repo     store.Repository
	tx       TxRunner

	current *model.Account
}

func NewSession(accounts *AccountService, repo store.Repository, tx TxRunner) *Session {
	return &Session{accounts: accounts, repo: repo, tx: tx}
}

// Current returns the logged-in account, or nil.
func (s *Session) Current() *model.Account {
	return s.current
}

func (s *Session) LoggedIn() bool {
	return s.current != nil
}

// Login authenticates against the directory. Unknown usernames and
// wrong PINs are indistinguishable to the caller; there is no retry
// limit and no lockout.
func (s *Session) Login(username string, pin int) (*model.Account, error) {
	acc, err := s.accounts.FindByUsername(username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if acc.PIN != pin {
		return nil, ErrInvalidCredentials
	}

	s.current = acc
	return acc, nil
}

// Logout drops the session without touching the directory.
func (s *Session) Logout() {
	s.current = nil
}

// Transfer moves amount from the session account to the named
// recipient. Both legs are appended inside one database transaction:
// either the sender's -amount and the recipient's +amount both land,
// or neither does.
func (s *Session) Transfer(toUsername string, amount int64) error {
	if s.current == nil {
		return ErrNotLoggedIn
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}

	sender := s.current

	return s.tx.ExecTx(func(r store.Repository) error {
		receiver, err := r.GetAccountByUsername(toUsername)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return ErrUnknownRecipient
			}
			return err
		}

		if receiver.Username == sender.Username {
			return ErrSelfTransfer
		}

		balance, err := r.GetAccountBalance(sender.ID)
		if err != nil {
			return err
		}
		if balance < amount {
			return ErrInsufficientBalance
		}

		now := time.Now().Unix()
		if _, err := r.AppendMovement(sender.ID, -amount, now, constants.NoteTransferOut); err != nil {
			return err
		}
		if _, err := r.AppendMovement(receiver.ID, amount, now, constants.NoteTransferIn); err != nil {
			return err
		}
		return nil
	})
}

// RequestLoan credits amount if any existing movement covers at least
// ten percent of it. Deliberately loose: the check is against single
// movements, not the balance.
func (s *Session) RequestLoan(amount int64) error {
	if s.current == nil {
		return ErrNotLoggedIn
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}

	movements, err := s.accounts.Movements(s.current.ID, false)
	if err != nil {
		return err
	}

	eligible := false
	for _, mov := range movements {
		if float64(mov.Amount) >= float64(amount)*constants.LoanEligibilityFactor {
			eligible = true
			break
		}
	}
	if !eligible {
		return ErrLoanIneligible
	}

	_, err = s.repo.AppendMovement(s.current.ID, amount, time.Now().Unix(), constants.NoteLoan)
	return err
}

// CloseAccount removes the session account from the directory. The
// confirmation credentials must match the session account exactly.
// On success the session is explicitly logged out; the original demo
// left a stale reference behind here.
func (s *Session) CloseAccount(username string, pin int) error {
	if s.current == nil {
		return ErrNotLoggedIn
	}
	if username != s.current.Username || pin != s.current.PIN {
		return ErrInvalidCredentials
	}

	if err := s.repo.RemoveAccount(username); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	s.current = nil
	return nil
}

// Movements is the display projection of the session account's
// history. The sort flag belongs to the caller (the view); the session
// keeps no display state.
func (s *Session) Movements(sortedByAmount bool) ([]model.Movement, error) {
	if s.current == nil {
		return nil, ErrNotLoggedIn
	}
	return s.accounts.Movements(s.current.ID, sortedByAmount)
}

// Summary computes the ledger figures for the session account.
func (s *Session) Summary() (ledger.Summary, error) {
	if s.current == nil {
		return ledger.Summary{}, ErrNotLoggedIn
	}
	return s.accounts.Summarize(s.current)
}

// Balance recomputes the session account's balance from its movements.
func (s *Session) Balance() (int64, error) {
	if s.current == nil {
		return 0, ErrNotLoggedIn
	}
	return s.repo.GetAccountBalance(s.current.ID)
}
