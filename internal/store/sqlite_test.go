package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(InMemoryPath, Migrations)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func createTestAccount(t *testing.T, s *Store, owner, username string) int64 {
	t.Helper()

	id, err := s.CreateAccount(owner, username, 1.2, 1111)
	require.NoError(t, err)
	return id
}

func TestCreateAndGetAccount(t *testing.T) {
	s := newTestStore(t)

	id := createTestAccount(t, s, "Jonas Schmedtmann", "js")

	acc, err := s.GetAccountByUsername("js")
	require.NoError(t, err)
	assert.Equal(t, id, acc.ID)
	assert.Equal(t, "Jonas Schmedtmann", acc.Owner)
	assert.Equal(t, "js", acc.Username)
	assert.Equal(t, 1.2, acc.InterestRate)
	assert.Equal(t, 1111, acc.PIN)

	byID, err := s.GetAccountByID(id)
	require.NoError(t, err)
	assert.Equal(t, acc, byID)
}

func TestCreateAccount_DuplicateUsername(t *testing.T) {
	s := newTestStore(t)

	createTestAccount(t, s, "Jonas Schmedtmann", "js")

	_, err := s.CreateAccount("Jane Smith", "js", 1.0, 2222)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestGetAccountByUsername_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetAccountByUsername("nobody")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestGetAccountByUsername_CaseSensitive(t *testing.T) {
	s := newTestStore(t)

	createTestAccount(t, s, "Jonas Schmedtmann", "js")

	_, err := s.GetAccountByUsername("JS")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestAccountExists(t *testing.T) {
	s := newTestStore(t)

	exists, err := s.AccountExists("js")
	require.NoError(t, err)
	assert.False(t, exists)

	createTestAccount(t, s, "Jonas Schmedtmann", "js")

	exists, err = s.AccountExists("js")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRemoveAccount(t *testing.T) {
	s := newTestStore(t)

	id := createTestAccount(t, s, "Jonas Schmedtmann", "js")
	_, err := s.AppendMovement(id, 20000, time.Now().Unix(), "opening movement")
	require.NoError(t, err)

	require.NoError(t, s.RemoveAccount("js"))

	_, err = s.GetAccountByUsername("js")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	// Movements go with the account.
	movements, err := s.ListMovements(id, false)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestRemoveAccount_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.RemoveAccount("nobody")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestAppendAndListMovements(t *testing.T) {
	s := newTestStore(t)

	id := createTestAccount(t, s, "Jonas Schmedtmann", "js")

	now := time.Now().Unix()
	for _, amount := range []int64{20000, 45000, -40000, 300000} {
		_, err := s.AppendMovement(id, amount, now, "opening movement")
		require.NoError(t, err)
	}

	movements, err := s.ListMovements(id, false)
	require.NoError(t, err)
	require.Len(t, movements, 4)

	// Chronological storage order.
	amounts := make([]int64, 0, len(movements))
	for _, mov := range movements {
		amounts = append(amounts, mov.Amount)
	}
	assert.Equal(t, []int64{20000, 45000, -40000, 300000}, amounts)
}

func TestListMovements_SortedProjection(t *testing.T) {
	s := newTestStore(t)

	id := createTestAccount(t, s, "Jonas Schmedtmann", "js")

	now := time.Now().Unix()
	for _, amount := range []int64{20000, -40000, 300000, 7000} {
		_, err := s.AppendMovement(id, amount, now, "")
		require.NoError(t, err)
	}

	sorted, err := s.ListMovements(id, true)
	require.NoError(t, err)

	amounts := make([]int64, 0, len(sorted))
	for _, mov := range sorted {
		amounts = append(amounts, mov.Amount)
	}
	assert.Equal(t, []int64{-40000, 7000, 20000, 300000}, amounts)

	// The projection never touches the stored order.
	chronological, err := s.ListMovements(id, false)
	require.NoError(t, err)

	amounts = amounts[:0]
	for _, mov := range chronological {
		amounts = append(amounts, mov.Amount)
	}
	assert.Equal(t, []int64{20000, -40000, 300000, 7000}, amounts)
}

func TestGetAccountBalance(t *testing.T) {
	s := newTestStore(t)

	id := createTestAccount(t, s, "Jonas Schmedtmann", "js")

	balance, err := s.GetAccountBalance(id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	now := time.Now().Unix()
	for _, amount := range []int64{20000, 45000, -40000} {
		_, err := s.AppendMovement(id, amount, now, "")
		require.NoError(t, err)
	}

	balance, err = s.GetAccountBalance(id)
	require.NoError(t, err)
	assert.Equal(t, int64(25000), balance)
}

func TestExecTx_RollsBackOnError(t *testing.T) {
	s := newTestStore(t)

	sender := createTestAccount(t, s, "Jonas Schmedtmann", "js")
	receiver := createTestAccount(t, s, "Jessica Davis", "jd")

	boom := errors.New("boom")
	err := s.ExecTx(func(r Repository) error {
		if _, err := r.AppendMovement(sender, -10000, time.Now().Unix(), "transfer out"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	for _, id := range []int64{sender, receiver} {
		movements, err := s.ListMovements(id, false)
		require.NoError(t, err)
		assert.Empty(t, movements)
	}
}

func TestExecTx_CommitsBothLegs(t *testing.T) {
	s := newTestStore(t)

	sender := createTestAccount(t, s, "Jonas Schmedtmann", "js")
	receiver := createTestAccount(t, s, "Jessica Davis", "jd")

	now := time.Now().Unix()
	err := s.ExecTx(func(r Repository) error {
		if _, err := r.AppendMovement(sender, -10000, now, "transfer out"); err != nil {
			return err
		}
		_, err := r.AppendMovement(receiver, 10000, now, "transfer in")
		return err
	})
	require.NoError(t, err)

	senderBalance, err := s.GetAccountBalance(sender)
	require.NoError(t, err)
	assert.Equal(t, int64(-10000), senderBalance)

	receiverBalance, err := s.GetAccountBalance(receiver)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), receiverBalance)
}
