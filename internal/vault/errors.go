package vault

import "errors"

var (
	// ErrNoStore is returned by Load when the store file does not exist.
	// Non-fatal: the directory starts empty.
	ErrNoStore = errors.New("user store does not exist")

	// ErrDuplicateUser rejects a signup for a username already on file.
	ErrDuplicateUser = errors.New("username is already taken")

	// ErrBadUsername rejects a username that fails the format rule:
	// 8-12 characters, letters, digits and underscore only.
	ErrBadUsername = errors.New("invalid username format")

	// ErrBadPassword rejects a password that fails the format rule:
	// 8-12 characters from letters, digits and _ @ $ # ! %.
	ErrBadPassword = errors.New("invalid password format")
)
