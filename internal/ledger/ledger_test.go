package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkalan/bankist/internal/model"
)

func movementsFromCents(cents ...int64) []model.Movement {
	movements := make([]model.Movement, 0, len(cents))
	for _, amount := range cents {
		movements = append(movements, model.Movement{Amount: amount})
	}
	return movements
}

// The classic demo account: movements of 200, 450, -400, 3000, -650,
// -130, 70 and 1300 euros at 1.2% interest.
func demoMovements() []model.Movement {
	return movementsFromCents(20000, 45000, -40000, 300000, -65000, -13000, 7000, 130000)
}

func TestBalance(t *testing.T) {
	assert.Equal(t, int64(384000), Balance(demoMovements()))
}

func TestDeposits(t *testing.T) {
	assert.Equal(t, int64(502000), Deposits(demoMovements()))
}

func TestWithdrawals(t *testing.T) {
	assert.Equal(t, int64(118000), Withdrawals(demoMovements()))
}

func TestInterest_DropsSubThresholdContributions(t *testing.T) {
	// Deposits 200, 450, 3000, 70, 1300 at 1.2% give 2.40, 5.40, 36.00,
	// 0.84 and 15.60; the 0.84 contribution is below one unit and earns
	// nothing, so the total is 59.40, not 60.24.
	assert.Equal(t, int64(5940), Interest(demoMovements(), 1.2))
}

func TestInterest_ThresholdIsPerDeposit(t *testing.T) {
	// At 1%, a 100.00 deposit contributes exactly 1.00 and counts;
	// 99.99 contributes 0.9999 and is dropped entirely.
	assert.Equal(t, int64(100), Interest(movementsFromCents(10000), 1))
	assert.Equal(t, int64(0), Interest(movementsFromCents(9999), 1))
	assert.Equal(t, int64(100), Interest(movementsFromCents(10000, 9999), 1))
}

func TestInterest_IgnoresWithdrawals(t *testing.T) {
	assert.Equal(t, int64(0), Interest(movementsFromCents(-500000), 10))
}

func TestInterest_ZeroRate(t *testing.T) {
	assert.Equal(t, int64(0), Interest(demoMovements(), 0))
}

func TestSummarize_EmptyMovements(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil, 1.2))
}

func TestSummarize_DemoAccount(t *testing.T) {
	got := Summarize(demoMovements(), 1.2)

	want := Summary{
		Balance:     384000,
		Deposits:    502000,
		Withdrawals: 118000,
		Interest:    5940,
	}
	assert.Equal(t, want, got)
}

func TestBalanceEqualsDepositsMinusWithdrawals(t *testing.T) {
	for _, movements := range [][]model.Movement{
		demoMovements(),
		movementsFromCents(500000, 340000, -15000, -79000, -321000, -100000, 850000, -3000),
		movementsFromCents(-100),
		nil,
	} {
		assert.Equal(t, Balance(movements), Deposits(movements)-Withdrawals(movements))
	}
}
