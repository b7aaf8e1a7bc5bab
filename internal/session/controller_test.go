package session

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitex-dev/capitex/internal/ledger"
	"github.com/capitex-dev/capitex/internal/vault"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newController(t *testing.T) *Controller {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank_users.csv")
	users, err := vault.Load(path)
	require.ErrorIs(t, err, vault.ErrNoStore)
	return NewController(users, path)
}

func signupLogin(t *testing.T, c *Controller, username, pw string) {
	t.Helper()
	require.NoError(t, c.SignUp(username, pw))
	require.NoError(t, c.LogIn(username, pw))
}

func TestSignUp_Validation(t *testing.T) {
	c := newController(t)

	assert.ErrorIs(t, c.SignUp("ab", "password@12"), vault.ErrBadUsername)
	assert.ErrorIs(t, c.SignUp("this_username_is_too_long", "password@12"), vault.ErrBadUsername)
	assert.ErrorIs(t, c.SignUp("", "password@12"), vault.ErrBadUsername)
	assert.ErrorIs(t, c.SignUp("lennyzhe", "short"), vault.ErrBadPassword)
	assert.ErrorIs(t, c.SignUp("lennyzhe", "no spaces ok"), vault.ErrBadPassword)

	require.NoError(t, c.SignUp("lennyzhe", "password@12"))
	assert.ErrorIs(t, c.SignUp("lennyzhe", "different@99"), vault.ErrDuplicateUser)
}

func TestLogIn(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.SignUp("lennyzhe", "password@12"))

	// Wrong password and unknown user return the same error.
	wrongPW := c.LogIn("lennyzhe", "password@13")
	unknown := c.LogIn("nobody_here", "password@12")
	require.ErrorIs(t, wrongPW, ErrInvalidCredentials)
	require.Equal(t, wrongPW, unknown)
	assert.False(t, c.LoggedIn())

	require.NoError(t, c.LogIn("lennyzhe", "password@12"))
	assert.True(t, c.LoggedIn())
	assert.Equal(t, "lennyzhe", c.Username())

	c.LogOut()
	assert.False(t, c.LoggedIn())
	assert.Empty(t, c.Username())
}

func TestOperations_NotLoggedIn(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.SignUp("lennyzhe", "password@12"))

	_, err := c.Deposit("200")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = c.Withdraw("50")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.ErrorIs(t, c.Transfer("10", "lennyzhe"), ErrNotLoggedIn)
	_, err = c.CheckBalance()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	// Nothing was touched.
	require.NoError(t, c.LogIn("lennyzhe", "password@12"))
	balance, err := c.CheckBalance()
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestDepositWithdraw_Scenario(t *testing.T) {
	c := newController(t)
	signupLogin(t, c, "lennyzhe", "password@12")

	balance, err := c.CheckBalance()
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	balance, err = c.Deposit("200")
	require.NoError(t, err)
	assert.Equal(t, "200.00", balance.StringFixed(2))

	// 3000 is on the wrong side of the strict cap.
	_, err = c.Deposit("3000")
	require.ErrorIs(t, err, ledger.ErrDepositRange)
	balance, _ = c.CheckBalance()
	assert.Equal(t, "200.00", balance.StringFixed(2))

	balance, err = c.Withdraw("50")
	require.NoError(t, err)
	assert.Equal(t, "150.00", balance.StringFixed(2))

	_, err = c.Withdraw("9999")
	require.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	balance, _ = c.CheckBalance()
	assert.Equal(t, "150.00", balance.StringFixed(2))
}

func TestAmountParsing(t *testing.T) {
	c := newController(t)
	signupLogin(t, c, "lennyzhe", "password@12")

	for _, text := range []string{"", "abc", "12x", "1.2.3"} {
		_, err := c.Deposit(text)
		assert.ErrorIs(t, err, ErrBadAmount, "deposit %q", text)
		_, err = c.Withdraw(text)
		assert.ErrorIs(t, err, ErrBadAmount, "withdraw %q", text)
		assert.ErrorIs(t, c.Transfer(text, "whoever_this"), ErrBadAmount, "transfer %q", text)
	}
}

func transferPair(t *testing.T) *Controller {
	t.Helper()
	c := newController(t)
	signupLogin(t, c, "receiver1", "password@12")
	c.LogOut()
	signupLogin(t, c, "senderone", "password@12")
	_, err := c.Deposit("500")
	require.NoError(t, err)
	c.LogOut()
	require.NoError(t, c.LogIn("receiver1", "password@12"))
	_, err = c.Deposit("300")
	require.NoError(t, err)
	c.LogOut()
	require.NoError(t, c.LogIn("senderone", "password@12"))
	return c
}

func balanceOf(t *testing.T, c *Controller, username string) string {
	t.Helper()
	u, ok := c.users.Get(username)
	require.True(t, ok)
	return u.Account.Balance().StringFixed(2)
}

func TestTransfer_Scenario(t *testing.T) {
	c := transferPair(t) // senderone: 500, receiver1: 300

	require.NoError(t, c.Transfer("200", "receiver1"))
	assert.Equal(t, "300.00", balanceOf(t, c, "senderone"))
	assert.Equal(t, "500.00", balanceOf(t, c, "receiver1"))

	// Exceeds the sender's balance.
	err := c.Transfer("9999", "receiver1")
	require.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	assert.Equal(t, "300.00", balanceOf(t, c, "senderone"))
	assert.Equal(t, "500.00", balanceOf(t, c, "receiver1"))

	// Unknown recipient: sender untouched.
	err = c.Transfer("200", "nobody_here")
	require.ErrorIs(t, err, ErrNoRecipient)
	assert.Equal(t, "300.00", balanceOf(t, c, "senderone"))
}

func TestTransfer_DepositBoundEnforcedUpFront(t *testing.T) {
	c := transferPair(t)
	_, err := c.Deposit("2900")
	require.NoError(t, err) // senderone now 3400

	// Within the sender's balance but over the deposit cap: rejected
	// before any mutation, so no funds can vanish between the legs.
	err = c.Transfer("3000", "receiver1")
	require.ErrorIs(t, err, ledger.ErrDepositRange)
	assert.Equal(t, "3400.00", balanceOf(t, c, "senderone"))
	assert.Equal(t, "300.00", balanceOf(t, c, "receiver1"))

	err = c.Transfer("0.50", "receiver1")
	require.ErrorIs(t, err, ledger.ErrDepositRange)
	assert.Equal(t, "3400.00", balanceOf(t, c, "senderone"))
}

func TestTransfer_Self(t *testing.T) {
	c := transferPair(t)

	err := c.Transfer("100", "senderone")
	require.ErrorIs(t, err, ErrSelfTransfer)
	assert.Equal(t, "500.00", balanceOf(t, c, "senderone"))
}

func TestPersistence_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_users.csv")
	users, err := vault.Load(path)
	require.ErrorIs(t, err, vault.ErrNoStore)
	c := NewController(users, path)

	signupLogin(t, c, "lennyzhe", "password@12")
	_, err = c.Deposit("200")
	require.NoError(t, err)
	_, err = c.Withdraw("50")
	require.NoError(t, err)

	// A fresh controller over the same store sees the same state and the
	// same credentials.
	users2, err := vault.Load(path)
	require.NoError(t, err)
	c2 := NewController(users2, path)
	require.NoError(t, c2.LogIn("lennyzhe", "password@12"))

	balance, err := c2.CheckBalance()
	require.NoError(t, err)
	assert.Equal(t, "150.00", balance.StringFixed(2))

	u1, _ := users.Get("lennyzhe")
	u2, _ := users2.Get("lennyzhe")
	assert.Equal(t, u1.Secret, u2.Secret)
	assert.Equal(t, u1.Account.Number(), u2.Account.Number())
}

func TestSignUp_StoresHashedSecret(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.SignUp("lennyzhe", "password@12"))

	u, ok := c.users.Get("lennyzhe")
	require.True(t, ok)
	assert.NotEqual(t, "password@12", u.Secret)
	assert.NotEmpty(t, u.Account.Number())
	assert.True(t, u.Account.Balance().IsZero())
}

func TestLogIn_UpgradesLegacySecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_users.csv")
	users := vault.NewService([]*vault.User{{
		Username: "lennyzhe",
		Secret:   "password@12", // plaintext, as written by the legacy app
		Account:  ledger.NewAccount("10482913", dec("100")),
	}})
	c := NewController(users, path)

	require.NoError(t, c.LogIn("lennyzhe", "password@12"))
	_, err := c.Deposit("10")
	require.NoError(t, err)

	got, err := vault.Load(path)
	require.NoError(t, err)
	u, _ := got.Get("lennyzhe")
	assert.NotEqual(t, "password@12", u.Secret, "secret must be re-hashed on save")

	// And the upgraded store still authenticates.
	c2 := NewController(got, path)
	require.NoError(t, c2.LogIn("lennyzhe", "password@12"))
	assert.ErrorIs(t, c2.LogIn("lennyzhe", "wrongpass@1"), ErrInvalidCredentials)
}
