package service

import "errors"

// Domain errors for the banking operations. The original demo rejected
// all of these silently; here every guard failure is an explicit,
// recoverable error value. None of them is fatal.
var (
	ErrInvalidCredentials  = errors.New("invalid username or PIN")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrUnknownRecipient    = errors.New("recipient not found")
	ErrSelfTransfer        = errors.New("can not transfer to your own account")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrLoanIneligible      = errors.New("no movement large enough to back this loan")
	ErrAccountNotFound     = errors.New("account not found")
	ErrNotLoggedIn         = errors.New("not logged in")
)
