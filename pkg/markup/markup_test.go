package markup_test

import (
	"testing"

	"github.com/arthur-debert/glossary/pkg/doc"
	"github.com/arthur-debert/glossary/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInlines(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want doc.Inlines
	}{
		{
			name: "plain text",
			src:  "Command-line interface.",
			want: doc.Inlines{doc.Str{Text: "Command-line"}, doc.Space{}, doc.Str{Text: "interface."}},
		},
		{
			name: "emphasis and strong",
			src:  "*very* **bold**",
			want: doc.Inlines{
				doc.Emph{Content: doc.Inlines{doc.Str{Text: "very"}}},
				doc.Space{},
				doc.Strong{Content: doc.Inlines{doc.Str{Text: "bold"}}},
			},
		},
		{
			name: "code span",
			src:  "run `ls -la`",
			want: doc.Inlines{doc.Str{Text: "run"}, doc.Space{}, doc.Code{Text: "ls -la"}},
		},
		{
			name: "two paragraphs are joined",
			src:  "one\n\ntwo",
			want: doc.Inlines{doc.Str{Text: "one"}, doc.Space{}, doc.Str{Text: "two"}},
		},
		{
			name: "empty source",
			src:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markup.ParseInlines(tt.src))
		})
	}
}

func TestParseInlinesLink(t *testing.T) {
	got := markup.ParseInlines("see [the docs](https://example.org \"Docs\")")
	require.Len(t, got, 3)
	link, ok := got[2].(doc.Link)
	require.True(t, ok, "expected a link, got %T", got[2])
	assert.Equal(t, "https://example.org", link.URL)
	assert.Equal(t, "Docs", link.Title)
	assert.Equal(t, "the docs", doc.Stringify(link.Content))
}

func TestParseBlocks(t *testing.T) {
	src := "# Title\n\nA paragraph.\n\n- one\n- two\n\n```go\nfmt.Println()\n```\n"
	blocks := markup.ParseBlocks(src)
	require.Len(t, blocks, 4)

	h, ok := blocks[0].(doc.Header)
	require.True(t, ok)
	assert.Equal(t, 1, h.Level)
	assert.Equal(t, "Title", doc.Stringify(h.Content))

	assert.IsType(t, doc.Para{}, blocks[1])

	list, ok := blocks[2].(doc.BulletList)
	require.True(t, ok)
	assert.Len(t, list.Items, 2)

	code, ok := blocks[3].(doc.CodeBlock)
	require.True(t, ok)
	assert.Equal(t, "go", code.Language)
	assert.Equal(t, "fmt.Println()\n", code.Text)
}

func TestParseBlocksRawHTML(t *testing.T) {
	blocks := markup.ParseBlocks("<div class=\"x\">\nhi\n</div>\n")
	require.Len(t, blocks, 1)
	raw, ok := blocks[0].(doc.RawBlock)
	require.True(t, ok)
	assert.Equal(t, "html", raw.Format)
	assert.Contains(t, raw.Text, `<div class="x">`)
}

func TestToHTML(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		inline bool
		want   string
	}{
		{"inline unwraps paragraph", "Command-line interface.", true, "Command-line interface."},
		{"inline keeps markup", "an *important* term", true, "an <em>important</em> term"},
		{"block keeps paragraph", "text", false, "<p>text</p>"},
		{"inline keeps multiple paragraphs", "a\n\nb", true, "<p>a</p>\n<p>b</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := markup.ToHTML(tt.src, tt.inline)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
