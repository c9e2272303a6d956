package model

import "strings"

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

// Deposit reports whether the movement is a deposit (positive amount).
func (m Movement) Deposit() bool {
	return m.Amount > 0
}

// FirstName returns the leading word of the owner's display name,
// used for the welcome banner.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return a.Owner
	}
	return fields[0]
}

// DeriveUsername builds the login username from an owner display name:
// the lowercased first letter of every word. "Steven Thomas Williams"
// becomes "stw".
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(owner)) {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}
