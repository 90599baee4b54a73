package frontmatter_test

import (
	"testing"

	"github.com/arthur-debert/glossary/pkg/frontmatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantOK   bool
		wantMeta string
		wantBody string
	}{
		{
			name:     "front matter and body",
			src:      "---\ntitle: Intro\n---\nHello\n",
			wantOK:   true,
			wantMeta: "title: Intro\n",
			wantBody: "Hello\n",
		},
		{
			name:     "dots close the block",
			src:      "---\na: 1\n...\nbody",
			wantOK:   true,
			wantMeta: "a: 1\n",
			wantBody: "body",
		},
		{
			name:     "empty block",
			src:      "---\n---\n",
			wantOK:   true,
			wantMeta: "",
			wantBody: "",
		},
		{
			name:     "no front matter",
			src:      "# Heading\n",
			wantOK:   false,
			wantBody: "# Heading\n",
		},
		{
			name:     "unterminated block",
			src:      "---\na: 1\n",
			wantOK:   false,
			wantBody: "---\na: 1\n",
		},
		{
			name:     "crlf line endings",
			src:      "---\r\nx: y\r\n---\r\nrest",
			wantOK:   true,
			wantMeta: "x: y\r\n",
			wantBody: "rest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, ok := frontmatter.Split([]byte(tt.src))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMeta, string(meta))
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestParse(t *testing.T) {
	meta, body, err := frontmatter.Parse([]byte("---\ntitle: Intro\nglossary:\n  popup: none\n---\ntext"))
	require.NoError(t, err)
	assert.Equal(t, "Intro", meta["title"])
	assert.Equal(t, map[string]interface{}{"popup": "none"}, meta["glossary"])
	assert.Equal(t, "text", string(body))
}

func TestParseWithoutFrontMatter(t *testing.T) {
	meta, body, err := frontmatter.Parse([]byte("just text"))
	require.NoError(t, err)
	assert.Empty(t, meta)
	assert.Equal(t, "just text", string(body))
}

func TestParseMalformed(t *testing.T) {
	_, _, err := frontmatter.Parse([]byte("---\nkey: [unclosed\n---\n"))
	assert.Error(t, err)
}
