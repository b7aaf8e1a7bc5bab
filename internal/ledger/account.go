// Package ledger holds the checking-account balance rules: deposits are
// capped per call, withdrawals can never overdraw, and all amounts are
// exact decimals.
package ledger

import "github.com/shopspring/decimal"

var (
	// MinDeposit is the smallest amount a single deposit accepts.
	MinDeposit = decimal.NewFromInt(1)
	// DepositCap is the exclusive upper bound for a single deposit.
	DepositCap = decimal.NewFromInt(3000)
)

// Account is a checking account: an opaque account number plus a balance.
// The balance is only reachable through the operations below, which keep
// it non-negative.
type Account struct {
	number  string
	balance decimal.Decimal
}

// NewAccount creates an account with the given number and starting balance.
func NewAccount(number string, balance decimal.Decimal) *Account {
	return &Account{number: number, balance: balance}
}

// Number returns the account number.
func (a *Account) Number() string {
	return a.number
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Deposit credits the account. The amount must satisfy
// MinDeposit <= amount < DepositCap; anything else is rejected with
// ErrDepositRange and the balance is untouched.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.LessThan(MinDeposit) || amount.GreaterThanOrEqual(DepositCap) {
		return ErrDepositRange
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw debits the account. The amount must be positive and no greater
// than the balance; anything else is rejected with ErrInsufficientFunds
// and the balance is untouched.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.Sign() <= 0 || amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// CanTransfer reports whether the account could fund a transfer of amount:
// positive and within the current balance. It never mutates the account.
func (a *Account) CanTransfer(amount decimal.Decimal) bool {
	return amount.Sign() > 0 && amount.LessThanOrEqual(a.balance)
}
