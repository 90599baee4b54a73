// Package markup turns markdown strings into pkg/doc content.
//
// Parsing is done by goldmark; this package only walks the goldmark AST and
// builds the equivalent doc nodes. It is used for definition texts, display
// texts and whole document bodies alike.
package markup

import (
	"bytes"
	"strings"

	"github.com/arthur-debert/glossary/pkg/doc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// ParseBlocks parses src as a sequence of blocks.
func ParseBlocks(src string) doc.Blocks {
	source := []byte(src)
	root := md.Parser().Parse(text.NewReader(source))
	c := converter{source: source}
	return c.blocks(root)
}

// ParseInlines parses src and flattens its blocks into one inline run.
// Consecutive blocks are joined by a single space.
func ParseInlines(src string) doc.Inlines {
	var out doc.Inlines
	for _, b := range ParseBlocks(src) {
		var content doc.Inlines
		switch n := b.(type) {
		case doc.Para:
			content = n.Content
		case doc.Plain:
			content = n.Content
		case doc.Header:
			content = n.Content
		default:
			content = doc.Text(doc.Stringify(n))
		}
		if len(content) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, doc.Space{})
		}
		out = append(out, content...)
	}
	return out
}

// ToHTML renders src to HTML. With inline set, a result consisting of a
// single paragraph is returned without its <p> wrapper.
func ToHTML(src string, inline bool) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	out := strings.TrimSpace(buf.String())
	if inline && strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") &&
		strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}

type converter struct {
	source []byte
}

func (c converter) lines(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(c.source))
	}
	return sb.String()
}

func (c converter) blocks(parent ast.Node) doc.Blocks {
	var out doc.Blocks
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if b := c.block(n); b != nil {
			out = append(out, b)
		}
	}
	return out
}

func (c converter) block(n ast.Node) doc.Block {
	switch n := n.(type) {
	case *ast.Paragraph:
		return doc.Para{Content: c.inlines(n)}
	case *ast.TextBlock:
		return doc.Plain{Content: c.inlines(n)}
	case *ast.Heading:
		return doc.Header{Level: n.Level, Content: c.inlines(n)}
	case *ast.ThematicBreak:
		return doc.HorizontalRule{}
	case *ast.FencedCodeBlock:
		return doc.CodeBlock{Language: string(n.Language(c.source)), Text: c.lines(n)}
	case *ast.CodeBlock:
		return doc.CodeBlock{Text: c.lines(n)}
	case *ast.Blockquote:
		return doc.BlockQuote{Content: c.blocks(n)}
	case *ast.List:
		var items []doc.Blocks
		for li := n.FirstChild(); li != nil; li = li.NextSibling() {
			items = append(items, c.blocks(li))
		}
		if n.IsOrdered() {
			return doc.OrderedList{Start: n.Start, Items: items}
		}
		return doc.BulletList{Items: items}
	case *ast.HTMLBlock:
		raw := c.lines(n)
		if n.HasClosure() {
			raw += string(n.ClosureLine.Value(c.source))
		}
		return doc.RawBlock{Format: "html", Text: raw}
	}
	if n.Type() == ast.TypeBlock && n.HasChildren() {
		return doc.Div{Content: c.blocks(n)}
	}
	return nil
}

func (c converter) inlines(parent ast.Node) doc.Inlines {
	var out doc.Inlines
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, c.inline(n)...)
	}
	return mergeStr(out)
}

// mergeStr joins adjacent Str nodes and collapses repeated spaces;
// goldmark splits text at delimiter runs.
func mergeStr(ins doc.Inlines) doc.Inlines {
	out := ins[:0]
	for _, in := range ins {
		if len(out) > 0 {
			switch cur := in.(type) {
			case doc.Str:
				if prev, ok := out[len(out)-1].(doc.Str); ok {
					out[len(out)-1] = doc.Str{Text: prev.Text + cur.Text}
					continue
				}
			case doc.Space:
				if _, ok := out[len(out)-1].(doc.Space); ok {
					continue
				}
			}
		}
		out = append(out, in)
	}
	return out
}

func (c converter) inline(n ast.Node) doc.Inlines {
	switch n := n.(type) {
	case *ast.Text:
		out := doc.Text(string(n.Segment.Value(c.source)))
		switch {
		case n.HardLineBreak():
			out = append(out, doc.LineBreak{})
		case n.SoftLineBreak():
			out = append(out, doc.SoftBreak{})
		}
		return out
	case *ast.String:
		return doc.Text(string(n.Value))
	case *ast.CodeSpan:
		var sb strings.Builder
		for t := n.FirstChild(); t != nil; t = t.NextSibling() {
			if seg, ok := t.(*ast.Text); ok {
				sb.Write(seg.Segment.Value(c.source))
			}
		}
		return doc.Inlines{doc.Code{Text: sb.String()}}
	case *ast.Emphasis:
		if n.Level >= 2 {
			return doc.Inlines{doc.Strong{Content: c.inlines(n)}}
		}
		return doc.Inlines{doc.Emph{Content: c.inlines(n)}}
	case *east.Strikethrough:
		return doc.Inlines{doc.Strikeout{Content: c.inlines(n)}}
	case *ast.Link:
		return doc.Inlines{doc.Link{Content: c.inlines(n), URL: string(n.Destination), Title: string(n.Title)}}
	case *ast.AutoLink:
		return doc.Inlines{doc.Link{Content: doc.Text(string(n.Label(c.source))), URL: string(n.URL(c.source))}}
	case *ast.Image:
		return doc.Inlines{doc.Image{Alt: c.inlines(n), URL: string(n.Destination), Title: string(n.Title)}}
	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			sb.Write(seg.Value(c.source))
		}
		return doc.Inlines{doc.RawInline{Format: "html", Text: sb.String()}}
	}
	return c.inlines(n)
}
