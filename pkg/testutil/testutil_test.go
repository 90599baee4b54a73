package testutil_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/glossary/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemFS(t *testing.T) {
	fs := testutil.MemFS(t, map[string]string{
		"glossary.yml":    "cli: Command-line interface.\n",
		"docs/guide/a.md": "A",
	})

	data, err := afero.ReadFile(fs, "docs/guide/a.md")
	require.NoError(t, err)
	assert.Equal(t, "A", string(data))

	info, err := fs.Stat("docs/guide")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestIsolateState(t *testing.T) {
	dir := testutil.IsolateState(t)
	assert.Equal(t, dir, os.Getenv("XDG_STATE_HOME"))
}
