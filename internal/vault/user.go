// Package vault is the persisted user directory: one credential record per
// username, loaded wholesale from a flat CSV store at startup and rewritten
// wholesale after every mutating operation.
package vault

import "github.com/capitex-dev/capitex/internal/ledger"

// User binds a username and stored secret to one checking account.
// Records are immutable after signup except for the account balance.
type User struct {
	Username string
	Secret   string // bcrypt hash, or plaintext in legacy stores
	Account  *ledger.Account
}
