package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("CapitEx Demo")
	cfg.Store.Path = "vault/users.csv"
	cfg.Git.AutoCommit = false

	path := filepath.Join(t.TempDir(), "capitex.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Bank.Name, got.Bank.Name)
	assert.Equal(t, cfg.Store.Path, got.Store.Path)
	assert.Equal(t, cfg.Git.AutoCommit, got.Git.AutoCommit)
	assert.Equal(t, cfg.Git.AuthorName, got.Git.AuthorName)
	assert.Equal(t, cfg.Git.AuthorEmail, got.Git.AuthorEmail)
}

func TestDefaults(t *testing.T) {
	cfg := Default("CapitEx Demo")

	assert.Equal(t, "CapitEx Demo", cfg.Bank.Name)
	assert.Equal(t, "bank_users.csv", cfg.Store.Path)
	assert.True(t, cfg.Git.AutoCommit)
	assert.Equal(t, "CapitEx Station", cfg.Git.AuthorName)
	assert.Equal(t, "station@capitex.dev", cfg.Git.AuthorEmail)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("CapitEx Demo")
	path := filepath.Join(t.TempDir(), "capitex.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: CapitEx Demo")
	assert.Contains(t, contents, "path: bank_users.csv")
	assert.Contains(t, contents, "auto_commit: true")
}
