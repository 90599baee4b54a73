package writer

import (
	"bytes"
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/glossary/pkg/assets"
	"github.com/arthur-debert/glossary/pkg/doc"
	"github.com/arthur-debert/glossary/pkg/pipeline"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes d as a standalone HTML page. Stylesheets and scripts from
// list are inlined in the head; notes become numbered endnotes.
func HTML(d *pipeline.Document, list []assets.Asset) ([]byte, error) {
	w := &htmlWriter{}

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	page := elem(atom.Html)
	root.AppendChild(page)

	head := elem(atom.Head)
	head.AppendChild(elem(atom.Meta, attr("charset", "utf-8")))
	title := elem(atom.Title)
	title.AppendChild(text(titleOf(d)))
	head.AppendChild(title)
	for _, a := range list {
		var n *html.Node
		switch a.Kind {
		case assets.Stylesheet:
			n = elem(atom.Style, attr("data-asset", a.Name))
		case assets.Script:
			n = elem(atom.Script, attr("data-asset", a.Name), attr("defer", ""))
		default:
			continue
		}
		n.AppendChild(text(a.Content))
		head.AppendChild(n)
	}
	page.AppendChild(head)

	body := elem(atom.Body)
	w.blocks(body, d.Body)
	if len(w.notes) > 0 {
		body.AppendChild(w.footnotes())
	}
	page.AppendChild(body)

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func titleOf(d *pipeline.Document) string {
	if t := d.Title(); t != "" {
		return t
	}
	return d.Name
}

type htmlWriter struct {
	notes []doc.Blocks
}

func (w *htmlWriter) blocks(parent *html.Node, bs doc.Blocks) {
	for _, b := range bs {
		w.block(parent, b)
	}
}

func (w *htmlWriter) block(parent *html.Node, b doc.Block) {
	switch n := b.(type) {
	case doc.Para:
		p := elem(atom.P)
		w.inlines(p, n.Content)
		parent.AppendChild(p)
	case doc.Plain:
		w.inlines(parent, n.Content)
	case doc.Header:
		h := elem(headings[clamp(n.Level, 1, 6)-1], attrsOf(n.Attr)...)
		w.inlines(h, n.Content)
		parent.AppendChild(h)
	case doc.CodeBlock:
		pre := elem(atom.Pre)
		var code *html.Node
		if n.Language != "" {
			code = elem(atom.Code, attr("class", "language-"+n.Language))
		} else {
			code = elem(atom.Code)
		}
		code.AppendChild(text(n.Text))
		pre.AppendChild(code)
		parent.AppendChild(pre)
	case doc.BlockQuote:
		q := elem(atom.Blockquote)
		w.blocks(q, n.Content)
		parent.AppendChild(q)
	case doc.BulletList:
		parent.AppendChild(w.list(elem(atom.Ul), n.Items))
	case doc.OrderedList:
		ol := elem(atom.Ol)
		if n.Start > 1 {
			ol.Attr = append(ol.Attr, attr("start", strconv.Itoa(n.Start)))
		}
		parent.AppendChild(w.list(ol, n.Items))
	case doc.DefinitionList:
		dl := elem(atom.Dl)
		for _, it := range n.Items {
			dt := elem(atom.Dt)
			w.inlines(dt, it.Term)
			dl.AppendChild(dt)
			for _, def := range it.Definitions {
				dd := elem(atom.Dd)
				w.blocks(dd, def)
				dl.AppendChild(dd)
			}
		}
		parent.AppendChild(dl)
	case doc.HorizontalRule:
		parent.AppendChild(elem(atom.Hr))
	case doc.RawBlock:
		if n.Format == "html" {
			appendRaw(parent, n.Text)
		}
	case doc.Div:
		div := elem(atom.Div, attrsOf(n.Attr)...)
		w.blocks(div, n.Content)
		parent.AppendChild(div)
	}
}

var headings = []atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

func (w *htmlWriter) list(l *html.Node, items []doc.Blocks) *html.Node {
	for _, it := range items {
		li := elem(atom.Li)
		w.blocks(li, it)
		l.AppendChild(li)
	}
	return l
}

func (w *htmlWriter) inlines(parent *html.Node, ins doc.Inlines) {
	for _, in := range ins {
		switch n := in.(type) {
		case doc.Str:
			parent.AppendChild(text(n.Text))
		case doc.Space:
			parent.AppendChild(text(" "))
		case doc.SoftBreak:
			parent.AppendChild(text("\n"))
		case doc.LineBreak:
			parent.AppendChild(elem(atom.Br))
		case doc.Emph:
			parent.AppendChild(w.wrap(elem(atom.Em), n.Content))
		case doc.Strong:
			parent.AppendChild(w.wrap(elem(atom.Strong), n.Content))
		case doc.Strikeout:
			parent.AppendChild(w.wrap(elem(atom.Del), n.Content))
		case doc.Code:
			c := elem(atom.Code)
			c.AppendChild(text(n.Text))
			parent.AppendChild(c)
		case doc.Link:
			a := elem(atom.A, attr("href", n.URL))
			if n.Title != "" {
				a.Attr = append(a.Attr, attr("title", n.Title))
			}
			parent.AppendChild(w.wrap(a, n.Content))
		case doc.Image:
			img := elem(atom.Img, attr("src", n.URL), attr("alt", doc.Stringify(n.Alt)))
			if n.Title != "" {
				img.Attr = append(img.Attr, attr("title", n.Title))
			}
			parent.AppendChild(img)
		case doc.Span:
			parent.AppendChild(w.wrap(elem(atom.Span, attrsOf(n.Attr)...), n.Content))
		case doc.Note:
			w.notes = append(w.notes, n.Content)
			num := strconv.Itoa(len(w.notes))
			sup := elem(atom.Sup)
			a := elem(atom.A,
				attr("href", "#fn"+num),
				attr("id", "fnref"+num),
				attr("class", "footnote-ref"),
				attr("role", "doc-noteref"))
			a.AppendChild(text(num))
			sup.AppendChild(a)
			parent.AppendChild(sup)
		case doc.RawInline:
			if n.Format == "html" {
				appendRaw(parent, n.Text)
			}
		}
	}
}

func (w *htmlWriter) wrap(n *html.Node, ins doc.Inlines) *html.Node {
	w.inlines(n, ins)
	return n
}

// footnotes renders the collected notes. Notes may themselves hold notes,
// so the list grows while it is written.
func (w *htmlWriter) footnotes() *html.Node {
	section := elem(atom.Section, attr("class", "footnotes"), attr("role", "doc-endnotes"))
	section.AppendChild(elem(atom.Hr))
	ol := elem(atom.Ol)
	for i := 0; i < len(w.notes); i++ {
		num := strconv.Itoa(i + 1)
		li := elem(atom.Li, attr("id", "fn"+num))
		w.blocks(li, w.notes[i])

		back := elem(atom.A,
			attr("href", "#fnref"+num),
			attr("class", "footnote-back"),
			attr("role", "doc-backlink"))
		back.AppendChild(text("↩"))
		target := li
		if last := li.LastChild; last != nil && last.DataAtom == atom.P {
			target = last
			target.AppendChild(text(" "))
		}
		target.AppendChild(back)
		ol.AppendChild(li)
	}
	section.AppendChild(ol)
	return section
}

// appendRaw parses src as HTML in the context of parent and appends the
// resulting nodes. Unparseable input is kept as text.
func appendRaw(parent *html.Node, src string) {
	ctx := &html.Node{Type: html.ElementNode, Data: parent.Data, DataAtom: parent.DataAtom}
	if ctx.DataAtom == 0 {
		ctx = elem(atom.Body)
	}
	nodes, err := html.ParseFragment(strings.NewReader(src), ctx)
	if err != nil {
		parent.AppendChild(text(src))
		return
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
}

func elem(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// attrsOf converts a doc.Attr; key/value attributes are sorted by key so
// output is stable.
func attrsOf(a doc.Attr) []html.Attribute {
	var out []html.Attribute
	if a.ID != "" {
		out = append(out, attr("id", a.ID))
	}
	if len(a.Classes) > 0 {
		out = append(out, attr("class", strings.Join(a.Classes, " ")))
	}
	keys := make([]string, 0, len(a.Attributes))
	for k := range a.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, attr(k, a.Attributes[k]))
	}
	return out
}
