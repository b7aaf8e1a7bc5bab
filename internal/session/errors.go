package session

import "errors"

var (
	// ErrNotLoggedIn rejects an account operation attempted without an
	// authenticated session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrInvalidCredentials is the single login failure. It does not
	// reveal whether the username exists.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrBadAmount rejects an amount that could not be parsed as a number.
	ErrBadAmount = errors.New("invalid amount")

	// ErrNoRecipient rejects a transfer to a username not on file.
	ErrNoRecipient = errors.New("recipient does not exist")

	// ErrSelfTransfer rejects a transfer to the sender's own account.
	ErrSelfTransfer = errors.New("cannot transfer to own account")
)
