package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

func (s *Store) CreateAccount(owner, username string, interestRate float64, pin int) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO accounts (owner, username, interest_rate, pin)
		VALUES (?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64

	err = stmt.QueryRow(owner, username, interestRate, pin).Scan(&newID)

	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) {
			if errors.Is(sqliteErr.Code, sqlite.ErrConstraint) || errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintUnique) {
				return 0, fmt.Errorf("failed to create account '%s': %w", username, ErrAccountExists)
			}
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

func (s *Store) GetAllAccounts() ([]*Account, error) {
	rows, err := s.db.Query(`
		SELECT id, owner, username, interest_rate, pin
		FROM accounts
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

func (s *Store) GetAccountByUsername(username string) (*Account, error) {
	row := s.db.QueryRow("SELECT id, owner, username, interest_rate, pin FROM accounts WHERE username = ?", username)

	acc := &Account{}

	err := row.Scan(&acc.ID, &acc.Owner, &acc.Username, &acc.InterestRate, &acc.PIN)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s': %w", username, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s' : %w", username, err)
	}

	return acc, nil
}

func (s *Store) GetAccountByID(id int64) (*Account, error) {
	row := s.db.QueryRow("SELECT id, owner, username, interest_rate, pin FROM accounts WHERE id = ?", id)

	acc := &Account{}

	err := row.Scan(&acc.ID, &acc.Owner, &acc.Username, &acc.InterestRate, &acc.PIN)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account with ID %d: %w", id, err)
	}

	return acc, nil
}

func (s *Store) AccountExists(username string) (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE username = ?)", username)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}

// RemoveAccount deletes the account row; movements go with it via
// ON DELETE CASCADE. A missing username is an explicit ErrRecordNotFound,
// never a silent no-op.
func (s *Store) RemoveAccount(username string) error {
	result, err := s.db.Exec(`
		DELETE FROM accounts
		WHERE username = ?
	`, username)
	if err != nil {
		return fmt.Errorf("failed to remove account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("account '%s': %w", username, ErrRecordNotFound)
	}

	return nil
}

func (s *Store) GetAccountBalance(accountID int64) (int64, error) {
	var balance sql.NullInt64
	err := s.db.QueryRow(`
		SELECT SUM(amount)
		FROM movements
		WHERE account_id = ?
	`, accountID).Scan(&balance)

	if err != nil {
		return 0, fmt.Errorf("failed to calculate balance: %w", err)
	}

	if balance.Valid {
		return balance.Int64, nil
	}
	return 0, nil
}

func (s *Store) scanAccounts(rows *sql.Rows) ([]*Account, error) {
	var accounts []*Account
	for rows.Next() {
		acc := &Account{}

		err := rows.Scan(&acc.ID, &acc.Owner, &acc.Username, &acc.InterestRate, &acc.PIN)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}
