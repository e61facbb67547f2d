package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/auth"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintHealthCountsFailures(t *testing.T) {
	var buf bytes.Buffer
	failed := printHealth(&buf, []domain.HealthCheckResult{
		{Category: "storage", Name: "Disk space", Status: domain.HealthPass, Message: "40% free"},
		{Category: "memory", Name: "Swap", Status: domain.HealthFail, Message: "swap exhausted"},
	})
	assert.Equal(t, 1, failed)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "STATUS"))
	assert.Contains(t, lines[2], "swap exhausted")
}

func TestTokenCommandMintsVerifiableToken(t *testing.T) {
	dir := t.TempDir()
	toml := "[server]\njwt_secret = \"cli-secret\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cli.toml"), []byte(toml), 0o600))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"token", "--config", "cli", "--config-dir", dir, "--client", "ops"})
	require.NoError(t, cmd.Execute())

	issuer := auth.NewIssuer(config.ServerConfig{JWTSecret: "cli-secret"})
	claims, err := issuer.Verify(strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.ClientID)
	assert.Contains(t, stderr.String(), "expires")
}

func TestTokenCommandWithoutSecret(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"token", "--config", "absent", "--config-dir", t.TempDir()})
	err := cmd.Execute()
	assert.ErrorIs(t, err, auth.ErrAuthDisabled)
}
