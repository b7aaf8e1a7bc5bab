// Package session orchestrates signup, login and the account operations
// against the user directory. A Controller holds at most one authenticated
// user; every mutating operation rewrites the persisted store before it
// reports success.
package session

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/capitex-dev/capitex/internal/ledger"
	"github.com/capitex-dev/capitex/internal/password"
	"github.com/capitex-dev/capitex/internal/vault"
)

// Controller drives the two-mode state machine: unauthenticated until
// LogIn succeeds, authenticated until LogOut. Account operations are only
// valid while authenticated.
type Controller struct {
	users     *vault.Service
	storePath string
	current   *vault.User
}

// NewController creates a Controller over a loaded directory. storePath is
// where mutating operations rewrite the store.
func NewController(users *vault.Service, storePath string) *Controller {
	return &Controller{users: users, storePath: storePath}
}

// SignUp validates the username and password rules, then creates a
// zero-balance account under a fresh account number and persists the
// directory. Field format is checked before the duplicate check, so
// malformed input always reports as a format error. Empty fields fail the
// format rules.
func (c *Controller) SignUp(username, pw string) error {
	if err := vault.ValidateUsername(username); err != nil {
		return err
	}
	if err := vault.ValidatePassword(pw); err != nil {
		return err
	}
	if c.users.Exists(username) {
		return vault.ErrDuplicateUser
	}

	number, err := ledger.NewNumber()
	if err != nil {
		return err
	}
	secret, err := password.Hash(pw)
	if err != nil {
		return err
	}

	u := &vault.User{
		Username: username,
		Secret:   secret,
		Account:  ledger.NewAccount(number, decimal.Zero),
	}
	if err := c.users.Add(u); err != nil {
		return err
	}
	return c.persist()
}

// LogIn authenticates a user and opens the session. Unknown usernames and
// wrong passwords produce the same error. A legacy plaintext secret is
// upgraded in memory; the next successful save persists the hash.
func (c *Controller) LogIn(username, pw string) error {
	u, ok := c.users.Get(username)
	if !ok || !password.Verify(u.Secret, pw) {
		return ErrInvalidCredentials
	}

	if password.NeedsRehash(u.Secret) {
		if secret, err := password.Hash(pw); err == nil {
			u.Secret = secret
		}
	}

	c.current = u
	return nil
}

// LogOut closes the session unconditionally.
func (c *Controller) LogOut() {
	c.current = nil
}

// LoggedIn reports whether a session is open.
func (c *Controller) LoggedIn() bool {
	return c.current != nil
}

// Username returns the authenticated username, or "" when logged out.
func (c *Controller) Username() string {
	if c.current == nil {
		return ""
	}
	return c.current.Username
}

// Deposit parses amountText, credits the session's account and persists.
// Returns the new balance.
func (c *Controller) Deposit(amountText string) (decimal.Decimal, error) {
	if c.current == nil {
		return decimal.Zero, ErrNotLoggedIn
	}
	amount, err := parseAmount(amountText)
	if err != nil {
		return decimal.Zero, err
	}
	if err := c.current.Account.Deposit(amount); err != nil {
		return decimal.Zero, err
	}
	if err := c.persist(); err != nil {
		return decimal.Zero, err
	}
	return c.current.Account.Balance(), nil
}

// Withdraw parses amountText, debits the session's account and persists.
// Returns the new balance.
func (c *Controller) Withdraw(amountText string) (decimal.Decimal, error) {
	if c.current == nil {
		return decimal.Zero, ErrNotLoggedIn
	}
	amount, err := parseAmount(amountText)
	if err != nil {
		return decimal.Zero, err
	}
	if err := c.current.Account.Withdraw(amount); err != nil {
		return decimal.Zero, err
	}
	if err := c.persist(); err != nil {
		return decimal.Zero, err
	}
	return c.current.Account.Balance(), nil
}

// Transfer moves amountText from the session's account to recipient. The
// amount must pass the sender's funds check and the deposit bounds before
// either leg runs, so a debit can never happen without the matching
// credit. Persists once after both legs.
func (c *Controller) Transfer(amountText, recipient string) error {
	if c.current == nil {
		return ErrNotLoggedIn
	}
	amount, err := parseAmount(amountText)
	if err != nil {
		return err
	}

	if !c.current.Account.CanTransfer(amount) {
		return ledger.ErrInsufficientFunds
	}
	if amount.LessThan(ledger.MinDeposit) || amount.GreaterThanOrEqual(ledger.DepositCap) {
		return ledger.ErrDepositRange
	}
	if recipient == c.current.Username {
		return ErrSelfTransfer
	}

	to, ok := c.users.Get(recipient)
	if !ok {
		return ErrNoRecipient
	}

	if err := c.current.Account.Withdraw(amount); err != nil {
		return err
	}
	if err := to.Account.Deposit(amount); err != nil {
		// Unreachable after the bounds checks above; refund the debit
		// leg so no amount is ever lost in flight.
		_ = c.current.Account.Deposit(amount)
		return err
	}
	return c.persist()
}

// CheckBalance returns the session's current balance without mutating
// anything.
func (c *Controller) CheckBalance() (decimal.Decimal, error) {
	if c.current == nil {
		return decimal.Zero, ErrNotLoggedIn
	}
	return c.current.Account.Balance(), nil
}

func (c *Controller) persist() error {
	if err := c.users.Save(c.storePath); err != nil {
		return fmt.Errorf("saving user store: %w", err)
	}
	return nil
}

func parseAmount(text string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrBadAmount, text)
	}
	return amount, nil
}
