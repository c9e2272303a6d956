package store

import (
	"database/sql"
	"fmt"
)

func (s *Store) AppendMovement(accountID, amount, timestamp int64, note string) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO movements (account_id, amount, timestamp, note)
		VALUES (?, ?, ?, ?)
	`, accountID, amount, timestamp, note)
	if err != nil {
		return 0, fmt.Errorf("failed to append movement: %w", err)
	}

	movementID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return movementID, nil
}

// ListMovements returns an account's movements. The stored order is
// chronological (insertion order) and is never rewritten; sortedByAmount
// selects an ascending-by-amount projection computed in the query.
func (s *Store) ListMovements(accountID int64, sortedByAmount bool) ([]*Movement, error) {
	orderBy := "ORDER BY id"
	if sortedByAmount {
		orderBy = "ORDER BY amount ASC, id"
	}

	rows, err := s.db.Query(`
		SELECT id, account_id, amount, timestamp, note
		FROM movements
		WHERE account_id = ?
		`+orderBy, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanMovements(rows)
}

func (s *Store) scanMovements(rows *sql.Rows) ([]*Movement, error) {
	var movements []*Movement
	for rows.Next() {
		mov := &Movement{}

		err := rows.Scan(&mov.ID, &mov.AccountID, &mov.Amount, &mov.Timestamp, &mov.Note)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}

		movements = append(movements, mov)
	}

	return movements, rows.Err()
}
