package render_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/arthur-debert/glossary/pkg/assets"
	"github.com/arthur-debert/glossary/pkg/config"
	"github.com/arthur-debert/glossary/pkg/doc"
	"github.com/arthur-debert/glossary/pkg/registry"
	"github.com/arthur-debert/glossary/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseHTML(t *testing.T, s string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return root
}

func attrOf(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func rawInline(t *testing.T, ins doc.Inlines) string {
	t.Helper()
	require.Len(t, ins, 1)
	raw, ok := ins[0].(doc.RawInline)
	require.True(t, ok, "expected raw inline, got %T", ins[0])
	assert.Equal(t, "html", raw.Format)
	return raw.Text
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    render.Backend
		wantErr bool
	}{
		{in: "html", want: render.BackendHTML},
		{in: "HTML5", want: render.BackendHTML},
		{in: "gfm", want: render.BackendMarkdown},
		{in: "md", want: render.BackendMarkdown},
		{in: "docbook", want: render.BackendDocBook},
		{in: "terminal", want: render.BackendTerminal},
		{in: "pdf", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := render.ParseBackend(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBackendInteractive(t *testing.T) {
	for _, b := range render.Backends() {
		assert.Equal(t, b == render.BackendHTML, b.Interactive(), b.String())
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "cli", render.Slug("CLI"))
	assert.Equal(t, "command-line-tool", render.Slug("Command line/tool"))
	assert.Equal(t, "caf-", render.Slug("Café"))
}

func TestInteractiveTerm(t *testing.T) {
	set := assets.NewSet()
	s := render.For(render.BackendHTML, render.Deps{IDs: &render.Counter{}, Assets: set})

	out := rawInline(t, s.RenderTerm(render.TermView{
		Term: "cli", Display: "cli", Definition: "Command-line interface.", Popup: config.PopupClick,
	}))

	root := parseHTML(t, out)
	links := cascadia.MustCompile("a.glossary").MatchAll(root)
	require.Len(t, links, 1)
	a := links[0]

	assert.Equal(t, "cli", textOf(a))
	for key, want := range map[string]string{
		"id":              "cli-1",
		"tabindex":        "0",
		"role":            "button",
		"data-bs-toggle":  "popover",
		"data-bs-trigger": "focus",
		"data-bs-content": "Command-line interface.",
	} {
		got, ok := attrOf(a, key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	assert.Equal(t, []string{assets.GlossaryCSS, assets.GlossaryJS}, set.Names())
}

func TestInteractiveTermIDsAreUnique(t *testing.T) {
	s := render.For(render.BackendHTML, render.Deps{})
	view := render.TermView{Term: "cli", Display: "cli", Definition: "x", Popup: config.PopupClick}

	ids := map[string]bool{}
	for i := 0; i < 5; i++ {
		a := cascadia.MustCompile("a").MatchFirst(parseHTML(t, rawInline(t, s.RenderTerm(view))))
		require.NotNil(t, a)
		id, _ := attrOf(a, "id")
		assert.True(t, strings.HasPrefix(id, "cli-"), id)
		assert.False(t, ids[id], "duplicate id %s", id)
		ids[id] = true
	}
}

func TestInteractiveTermEscapesQuotes(t *testing.T) {
	s := render.For(render.BackendHTML, render.Deps{IDs: &render.Counter{}})
	out := rawInline(t, s.RenderTerm(render.TermView{
		Term: "quote", Display: "quote", Definition: `He said "hi" and 'bye'`, Popup: config.PopupClick,
	}))

	assert.NotContains(t, out, `"hi"`)

	links := cascadia.MustCompile("a.glossary").MatchAll(parseHTML(t, out))
	require.Len(t, links, 1, "attribute quoting must keep one well-formed anchor")
	content, _ := attrOf(links[0], "data-bs-content")
	assert.Contains(t, content, "hi")
	assert.Contains(t, content, "bye")
	role, _ := attrOf(links[0], "role")
	assert.Equal(t, "button", role)
}

func TestInteractivePlainSpan(t *testing.T) {
	tests := []struct {
		name string
		view render.TermView
	}{
		{
			name: "popup none with definition",
			view: render.TermView{Term: "cli", Display: "cli", Definition: "Command-line interface.", Popup: config.PopupNone},
		},
		{
			name: "empty definition",
			view: render.TermView{Term: "missingterm", Display: "missingterm", Popup: config.PopupClick},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := assets.NewSet()
			s := render.For(render.BackendHTML, render.Deps{Assets: set})
			got := s.RenderTerm(tt.view)

			require.Len(t, got, 1)
			span, ok := got[0].(doc.Span)
			require.True(t, ok)
			assert.Empty(t, span.Attr.Classes)
			assert.Equal(t, tt.view.Display, doc.Stringify(span.Content))
			assert.Empty(t, set.Names())
		})
	}
}

func TestInteractiveTable(t *testing.T) {
	set := assets.NewSet()
	s := render.For(render.BackendHTML, render.Deps{Assets: set})

	blocks := s.RenderTable([]registry.Entry{
		{Term: "api", Definition: "Application Programming Interface."},
		{Term: "cli", Definition: "Command-line *interface*."},
		{Term: "missingterm", Definition: ""},
	})
	require.Len(t, blocks, 1)
	raw, ok := blocks[0].(doc.RawBlock)
	require.True(t, ok)

	root := parseHTML(t, raw.Text)
	require.NotNil(t, cascadia.MustCompile("table.glossary_table").MatchFirst(root))

	var headers []string
	for _, th := range cascadia.MustCompile("table.glossary_table thead th").MatchAll(root) {
		headers = append(headers, textOf(th))
	}
	assert.Equal(t, []string{"Term", "Definition"}, headers)

	rows := cascadia.MustCompile("table.glossary_table tbody tr").MatchAll(root)
	require.Len(t, rows, 3)
	cells := cascadia.MustCompile("td").MatchAll(rows[1])
	require.Len(t, cells, 2)
	assert.Equal(t, "cli", textOf(cells[0]))
	assert.Equal(t, "Command-line interface.", textOf(cells[1]))
	assert.NotNil(t, cascadia.MustCompile("em").MatchFirst(cells[1]))

	assert.Equal(t, []string{assets.GlossaryCSS, assets.GlossaryJS}, set.Names())
}

func TestStructuralTerm(t *testing.T) {
	s := render.For(render.BackendMarkdown, render.Deps{})

	got := s.RenderTerm(render.TermView{
		Term: "cli", Display: "cli", Definition: "Command-line interface.", Popup: config.PopupClick,
	})
	require.Len(t, got, 1)
	span := got[0].(doc.Span)
	assert.True(t, span.Attr.HasClass("glossary"))
	require.Len(t, span.Content, 2)
	assert.Equal(t, doc.Str{Text: "cli"}, span.Content[0])
	note, ok := span.Content[1].(doc.Note)
	require.True(t, ok)
	assert.Equal(t, "Command-line interface.", doc.Stringify(note.Content))
}

func TestStructuralPopupNoneHasNoNote(t *testing.T) {
	s := render.For(render.BackendDocBook, render.Deps{})
	got := s.RenderTerm(render.TermView{
		Term: "cli", Display: "cli", Definition: "Command-line interface.", Popup: config.PopupNone,
	})
	span := got[0].(doc.Span)
	assert.Equal(t, doc.Inlines{doc.Str{Text: "cli"}}, span.Content)
}

func TestStructuralCopyBeforeAppend(t *testing.T) {
	// spare capacity makes an in-place append visible through the shared array
	label := make(doc.Inlines, 1, 8)
	label[0] = doc.Str{Text: "cli"}

	s := render.For(render.BackendMarkdown, render.Deps{})
	annotated := s.RenderTerm(render.TermView{
		Term: "cli", Label: label, Definition: "Command-line interface.", Popup: config.PopupClick,
	})
	plain := s.RenderTerm(render.TermView{
		Term: "cli", Label: label, Definition: "Command-line interface.", Popup: config.PopupNone,
	})

	assert.Len(t, annotated[0].(doc.Span).Content, 2)
	assert.Equal(t, doc.Inlines{doc.Str{Text: "cli"}}, plain[0].(doc.Span).Content)
	assert.Equal(t, doc.Inlines{doc.Str{Text: "cli"}}, label)
	_, leaked := label[:2][1].(doc.Note)
	assert.False(t, leaked, "note written into the shared label array")
}

func TestStructuralTable(t *testing.T) {
	s := render.For(render.BackendTerminal, render.Deps{})
	blocks := s.RenderTable([]registry.Entry{
		{Term: "api", Definition: "Application Programming Interface."},
		{Term: "cli", Definition: "Command-line interface."},
	})
	require.Len(t, blocks, 1)
	div := blocks[0].(doc.Div)
	assert.True(t, div.Attr.HasClass("glossary_table"))
	dl := div.Content[0].(doc.DefinitionList)
	require.Len(t, dl.Items, 2)
	assert.Equal(t, "api", doc.Stringify(dl.Items[0].Term))
	assert.Equal(t, "Command-line interface.", doc.Stringify(dl.Items[1].Definitions[0]))
}
