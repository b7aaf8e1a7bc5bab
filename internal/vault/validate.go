package vault

import "regexp"

var (
	usernameRule = regexp.MustCompile(`^[A-Za-z0-9_]{8,12}$`)
	passwordRule = regexp.MustCompile(`^[A-Za-z0-9_@$#!%]{8,12}$`)
)

// ValidateUsername checks the signup username rule. Case-sensitive; no
// symbols beyond underscore.
func ValidateUsername(username string) error {
	if !usernameRule.MatchString(username) {
		return ErrBadUsername
	}
	return nil
}

// ValidatePassword checks the signup password rule.
func ValidatePassword(pw string) error {
	if !passwordRule.MatchString(pw) {
		return ErrBadPassword
	}
	return nil
}
