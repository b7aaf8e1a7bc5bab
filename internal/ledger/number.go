package ledger

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	numberMin = 10_000_000
	numberMax = 999_999_999
)

// NewNumber returns a random account number: an 8 or 9 digit decimal string
// drawn uniformly from [10000000, 999999999]. Numbers are opaque labels;
// collisions are not checked, the username is the key everywhere.
func NewNumber() (string, error) {
	span := big.NewInt(numberMax - numberMin + 1)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("generating account number: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+numberMin), nil
}
