package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root, opts := newRootCmd()
	defer opts.closeLog()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cardform version dev\n", out)
}

func TestComposeThroughRoot(t *testing.T) {
	out, err := execute(t, "compose", "card-number", "card-expiry,cvv")
	require.NoError(t, err)
	assert.Contains(t, out, "<primer-input-card-number></primer-input-card-number>")
	assert.Contains(t, out, `<div style="display: flex; gap: 8px; flex-wrap: wrap;">`)
}

func TestInitUsesConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	out, err := execute(t, "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_filename: card-form.html")
}

func TestRootSettingsRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  default_filename: \"\"\n"), 0644))

	opts := &rootOptions{config: path}
	_, err := opts.settings()
	assert.Error(t, err)
}

func TestDebugLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	oldDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(oldDir)

	opts := &rootOptions{debug: true}
	logger, err := opts.logger(&bytes.Buffer{}, true)
	require.NoError(t, err)
	logger.Debug("builder started")
	require.NoError(t, opts.logFile.Close())

	data, err := os.ReadFile(filepath.Join(dir, "cardform-debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "builder started")
}

func TestDebugLogClosedWhenCommandFails(t *testing.T) {
	dir := t.TempDir()
	oldDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(oldDir)

	root, opts := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"compose", "iban", "--debug"})

	func() {
		defer opts.closeLog()
		require.Error(t, root.Execute())
	}()

	require.NotNil(t, opts.logFile)
	assert.ErrorIs(t, opts.logFile.Close(), os.ErrClosed)
}

func TestRunReturnsCommandError(t *testing.T) {
	dir := t.TempDir()
	oldDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(oldDir)

	err := run(context.Background(), []string{"compose", "iban", "--debug"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rows")
	assert.FileExists(t, filepath.Join(dir, "cardform-debug.log"))
}
