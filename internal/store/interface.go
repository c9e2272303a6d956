package store

type Repository interface {
	// Account Operations
	CreateAccount(owner, username string, interestRate float64, pin int) (int64, error)
	GetAllAccounts() ([]*Account, error)
	GetAccountByUsername(username string) (*Account, error)
	GetAccountByID(id int64) (*Account, error)
	AccountExists(username string) (bool, error)
	RemoveAccount(username string) error
	GetAccountBalance(accountID int64) (int64, error)

	// Movement Operations
	AppendMovement(accountID, amount, timestamp int64, note string) (int64, error)
	ListMovements(accountID int64, sortedByAmount bool) ([]*Movement, error)

	Close() error
}
