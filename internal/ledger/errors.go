package ledger

import "errors"

var (
	// ErrDepositRange rejects a deposit outside [MinDeposit, DepositCap).
	ErrDepositRange = errors.New("deposit amount out of range")

	// ErrInsufficientFunds rejects a withdrawal that is non-positive or
	// exceeds the balance. The two causes are deliberately one error.
	ErrInsufficientFunds = errors.New("insufficient funds or invalid amount")
)
