package main

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blindauth/config"
	"blindauth/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "authctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestHashIdentifierCmd_SaltFlag(t *testing.T) {
	stdout, _, err := execute(t, "hash-identifier", "--salt", "pepper", "  A@B.com ")
	require.NoError(t, err)

	assert.Equal(t, auth.HashIdentifier("a@b.com", "pepper"), strings.TrimSpace(stdout))
}

func TestHashIdentifierCmd_FromConfig(t *testing.T) {
	path := writeConfig(t, "auth:\n  identifierSalt: from-config\n")

	stdout, stderr, err := execute(t, "--config", path, "hash-identifier", "a@b.com")
	require.NoError(t, err)

	assert.Equal(t, auth.HashIdentifier("a@b.com", "from-config"), strings.TrimSpace(stdout))
	assert.Empty(t, stderr)
}

func TestHashIdentifierCmd_DefaultSaltWarns(t *testing.T) {
	path := writeConfig(t, "env:\n  env: test\n")

	stdout, stderr, err := execute(t, "--config", path, "hash-identifier", "a@b.com")
	require.NoError(t, err)

	assert.Equal(t, auth.HashIdentifier("a@b.com", config.DefaultIdentifierSalt), strings.TrimSpace(stdout))
	assert.Contains(t, stderr, "identifierSalt is not set")
}

func TestHashIdentifierCmd_RequiresArgument(t *testing.T) {
	_, _, err := execute(t, "hash-identifier", "--salt", "x")
	assert.Error(t, err)
}

func TestMigrateCmd_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")
	path := writeConfig(t, "env:\n  log:\n    level: error\ndatabase:\n  driver: sqlite\n  sqlite:\n    path: "+dbPath+"\n")

	stdout, _, err := execute(t, "--config", path, "migrate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Migrations completed successfully")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var name string
	require.NoError(t, db.QueryRowContext(context.Background(),
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'users'").Scan(&name))
	assert.Equal(t, "users", name)
}

func TestMigrateCmd_UnknownDriver(t *testing.T) {
	path := writeConfig(t, "env:\n  log:\n    level: error\ndatabase:\n  driver: oracle\n")

	_, _, err := execute(t, "--config", path, "migrate")
	assert.ErrorContains(t, err, "unsupported database driver")
}
