package store

type Account struct {
	ID           int64
	Owner        string
	Username     string
	InterestRate float64
	PIN          int
}

type Movement struct {
	ID        int64
	AccountID int64
	Amount    int64
	Timestamp int64
	Note      string
}
