package vault

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/capitex-dev/capitex/internal/ledger"
)

// The store is line-oriented CSV, one record per user, no header row.
const (
	numFields  = 4
	colUser    = 0
	colSecret  = 1
	colAcctNum = 2
	colBalance = 3
)

// ReadUsers reads every record from a user store.
func ReadUsers(r io.Reader) ([]*User, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading user store CSV: %w", err)
	}

	var users []*User
	for i, rec := range records {
		u, err := UnmarshalUser(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		users = append(users, u)
	}
	return users, nil
}

// WriteUsers writes every record to a user store.
func WriteUsers(w io.Writer, users []*User) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, u := range users {
		if err := cw.Write(MarshalUser(u)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	return cw.Error()
}

// MarshalUser converts a User to a CSV row.
func MarshalUser(u *User) []string {
	row := make([]string, numFields)
	row[colUser] = u.Username
	row[colSecret] = u.Secret
	row[colAcctNum] = u.Account.Number()
	row[colBalance] = u.Account.Balance().String()
	return row
}

// UnmarshalUser converts a CSV row to a User.
func UnmarshalUser(record []string) (*User, error) {
	if len(record) != numFields {
		return nil, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return nil, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	return &User{
		Username: record[colUser],
		Secret:   record[colSecret],
		Account:  ledger.NewAccount(record[colAcctNum], balance),
	}, nil
}
