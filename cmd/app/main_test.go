package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/vdolink/vdolink/internal/app"
	"github.com/vdolink/vdolink/internal/config"
)

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	root := &cli.Command{Name: "vdolink", Commands: getCommands()}
	return root.Run(context.Background(), append([]string{"vdolink"}, args...))
}

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("KEY_FILE", filepath.Join(dir, "encryption.key"))
	t.Setenv("CONFIG_FILE", filepath.Join(dir, "config.json"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("CIPHER_ALGORITHM", "aes-gcm")
	t.Setenv("KMS_KEY_URI", "")
	t.Setenv("METRICS_ENABLED", "false")
	return dir
}

func loadStoredLink(t *testing.T) (string, bool) {
	t.Helper()
	container := app.NewContainer(config.Load())
	defer func() { _ = container.Shutdown(context.Background()) }()

	useCase, err := container.LinkUseCase(context.Background())
	require.NoError(t, err)
	return useCase.Load(context.Background())
}

func TestCLI_SetLinkThenShow(t *testing.T) {
	dir := setupEnv(t)

	require.NoError(t, runCLI(t, "set-link", "--push-id", "abc123"))
	require.NoError(t, runCLI(t, "show-link", "--format", "json"))

	url, ok := loadStoredLink(t)
	assert.True(t, ok)
	assert.Equal(t, "https://vdo.ninja/?push=abc123", url)

	info, err := os.Stat(filepath.Join(dir, "encryption.key"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCLI_GenerateLink(t *testing.T) {
	setupEnv(t)

	require.NoError(t, runCLI(t, "generate-link"))

	url, ok := loadStoredLink(t)
	assert.True(t, ok)
	assert.Contains(t, url, "&audience=")
}

func TestCLI_EnsureLinkKeepsExisting(t *testing.T) {
	setupEnv(t)

	require.NoError(t, runCLI(t, "set-link", "--push-id", "studio", "--audience", "Valid1Pass!"))
	require.NoError(t, runCLI(t, "ensure-link"))

	url, ok := loadStoredLink(t)
	assert.True(t, ok)
	assert.Equal(t, "https://vdo.ninja/?push=studio&audience=Valid1Pass!", url)
}

func TestCLI_InputErrors(t *testing.T) {
	setupEnv(t)

	assert.Error(t, runCLI(t, "set-link", "--push-id", "abc123", "--audience", "weak"))
	assert.Error(t, runCLI(t, "set-link"))
	assert.Error(t, runCLI(t, "validate-password", "--password", "NoDigits!!"))
	assert.NoError(t, runCLI(t, "validate-password", "--password", "Valid1Pass!"))

	_, ok := loadStoredLink(t)
	assert.False(t, ok)
}

func TestCLI_CreateKey(t *testing.T) {
	dir := setupEnv(t)

	require.NoError(t, runCLI(t, "create-key"))
	first, err := os.ReadFile(filepath.Join(dir, "encryption.key"))
	require.NoError(t, err)
	assert.Len(t, first, 32)

	require.NoError(t, runCLI(t, "create-key"))
	second, err := os.ReadFile(filepath.Join(dir, "encryption.key"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
