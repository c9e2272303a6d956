package constants

const (
	MaxSafeBalanceFloat = 9223372036854775.0
)

const (
	CentsPerUnit = 100
	PinLength    = 4
)

const (
	// InterestThresholdCents is the minimum per-deposit interest
	// contribution (one whole currency unit) that gets credited at all.
	InterestThresholdCents = 100

	// LoanEligibilityFactor: a loan request needs at least one existing
	// movement worth this fraction of the requested amount.
	LoanEligibilityFactor = 0.1
)

const (
	NoteTransferOut = "transfer out"
	NoteTransferIn  = "transfer in"
	NoteLoan        = "loan"
	NoteSeed        = "opening movement"
)

const (
	DateFormat = "2006-01-02"
)
