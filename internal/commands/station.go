package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/capitex-dev/capitex/internal/config"
	"github.com/capitex-dev/capitex/internal/gitops"
	"github.com/capitex-dev/capitex/internal/ledger"
	"github.com/capitex-dev/capitex/internal/session"
	"github.com/capitex-dev/capitex/internal/vault"
)

const configFile = "capitex.yaml"

// station bundles everything a command needs to operate on a data directory.
type station struct {
	dir  string
	cfg  *config.Config
	ctrl *session.Controller
}

// loadStation reads capitex.yaml and the user store under dir. A missing
// store is reported on stderr and the directory starts empty.
func loadStation(dir string) (*station, error) {
	cfg, err := config.Load(filepath.Join(dir, configFile))
	if err != nil {
		return nil, fmt.Errorf("loading station config (did you run capitex init?): %w", err)
	}

	storePath := filepath.Join(dir, cfg.Store.Path)
	users, err := vault.Load(storePath)
	if errors.Is(err, vault.ErrNoStore) {
		fmt.Fprintln(os.Stderr, "warning: user store does not exist yet, starting empty")
	} else if err != nil {
		return nil, err
	}

	return &station{
		dir:  dir,
		cfg:  cfg,
		ctrl: session.NewController(users, storePath),
	}, nil
}

// snapshot commits the data directory after a mutating operation when
// auto-commit is on. Snapshot failures are reported, not fatal: the store
// itself was already rewritten.
func (s *station) snapshot(message string) {
	if !s.cfg.Git.AutoCommit || !gitops.IsRepo(s.dir) {
		return
	}
	if _, err := gitops.Snapshot(s.dir, message, s.cfg.Git.AuthorName, s.cfg.Git.AuthorEmail); err != nil {
		fmt.Fprintf(os.Stderr, "warning: git snapshot failed: %v\n", err)
	}
}

// errorMessage renders a core error the way the station displays it.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, vault.ErrBadUsername):
		return "Username must be 8-12 characters and can only include letters, numbers and underscores"
	case errors.Is(err, vault.ErrBadPassword):
		return "Password must be 8-12 characters and can only contain letters, numbers, and @, %, #, $, !"
	case errors.Is(err, vault.ErrDuplicateUser):
		return "Username is already taken. Choose a different username."
	case errors.Is(err, session.ErrInvalidCredentials):
		return "Try again. Either your name or password is invalid"
	case errors.Is(err, session.ErrNotLoggedIn):
		return "Please log in first"
	case errors.Is(err, session.ErrBadAmount):
		return "Please enter a valid amount"
	case errors.Is(err, session.ErrNoRecipient):
		return "Recipient account does not exist."
	case errors.Is(err, session.ErrSelfTransfer):
		return "Recipient must be a different account"
	case errors.Is(err, ledger.ErrDepositRange):
		return "Deposit amount must be between 1 and 3,000"
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "You have insufficient funds in your account or you entered an invalid amount"
	default:
		return err.Error()
	}
}
