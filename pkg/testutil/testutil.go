// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// MemFS returns an in-memory file system holding files, keyed by path.
func MemFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		WriteFile(t, fs, name, content)
	}
	return fs
}

// WriteFile writes content to name, creating parent directories.
func WriteFile(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
}

// IsolateState points the XDG state directory, where the log file lives,
// at a per-test temporary directory.
func IsolateState(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	return dir
}
