package render

import (
	"bytes"
	"strings"

	"github.com/arthur-debert/glossary/pkg/assets"
	"github.com/arthur-debert/glossary/pkg/doc"
	"github.com/arthur-debert/glossary/pkg/logging"
	"github.com/arthur-debert/glossary/pkg/markup"
	"github.com/arthur-debert/glossary/pkg/registry"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Interactive renders HTML. Annotated terms become focusable anchors whose
// popup content is the definition rendered to HTML.
type Interactive struct {
	ids    IDSource
	assets *assets.Set
}

// RenderTerm returns a popover anchor as raw HTML, or a plain span when
// there is nothing to show.
func (r *Interactive) RenderTerm(v TermView) doc.Inlines {
	if !v.annotated() {
		return doc.Inlines{doc.Span{Content: v.label()}}
	}
	r.requireAssets()

	a := element(atom.A,
		attr("class", ClassGlossary),
		attr("id", Slug(v.Term)+"-"+r.ids.NewID()),
		attr("tabindex", "0"),
		attr("role", "button"),
		attr("data-bs-toggle", "popover"),
		attr("data-bs-trigger", "focus"),
		attr("data-bs-html", "true"),
		attr("data-bs-content", fragmentHTML(v.Definition, true)),
	)
	appendFragment(a, labelHTML(v))
	return doc.Inlines{doc.RawInline{Format: "html", Text: renderNode(a)}}
}

// RenderTable returns a raw HTML table of entries.
func (r *Interactive) RenderTable(entries []registry.Entry) doc.Blocks {
	r.requireAssets()

	table := element(atom.Table, attr("class", ClassGlossary+"_table"))
	head := element(atom.Thead)
	headRow := element(atom.Tr)
	for _, h := range []string{"Term", "Definition"} {
		th := element(atom.Th)
		th.AppendChild(&html.Node{Type: html.TextNode, Data: h})
		headRow.AppendChild(th)
	}
	head.AppendChild(headRow)
	table.AppendChild(head)

	body := element(atom.Tbody)
	for _, e := range entries {
		row := element(atom.Tr)
		term := element(atom.Td)
		appendFragment(term, fragmentHTML(e.Term, true))
		def := element(atom.Td)
		appendFragment(def, fragmentHTML(e.Definition, true))
		row.AppendChild(term)
		row.AppendChild(def)
		body.AppendChild(row)
	}
	table.AppendChild(body)

	return doc.Blocks{doc.RawBlock{Format: "html", Text: renderNode(table)}}
}

func (r *Interactive) requireAssets() {
	r.assets.Require(assets.GlossaryCSS)
	r.assets.Require(assets.GlossaryJS)
}

func labelHTML(v TermView) string {
	if v.Label != nil {
		return html.EscapeString(doc.Stringify(v.Label))
	}
	return fragmentHTML(v.Display, true)
}

// fragmentHTML converts markdown to HTML, falling back to escaped text.
func fragmentHTML(src string, inline bool) string {
	out, err := markup.ToHTML(src, inline)
	if err != nil {
		log := logging.GetLogger("render.interactive")
		log.Warn().Err(err).Msg("Markdown conversion failed, using plain text")
		return html.EscapeString(src)
	}
	return out
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// appendFragment parses src in the context of parent and adopts the result.
func appendFragment(parent *html.Node, src string) {
	ctx := element(parent.DataAtom)
	nodes, err := html.ParseFragment(strings.NewReader(src), ctx)
	if err != nil {
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: src})
		return
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
}

func renderNode(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		log := logging.GetLogger("render.interactive")
		log.Error().Err(err).Msg("Failed to serialize HTML node")
	}
	return buf.String()
}
