package pipeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/glossary/pkg/doc"
	"github.com/arthur-debert/glossary/pkg/glossary"
	"github.com/arthur-debert/glossary/pkg/shortcode"
	"github.com/google/uuid"
)

// slot is one shortcode occurrence replaced by a placeholder before the
// body is parsed. Slots without a call stand for literal text.
type slot struct {
	occ  shortcode.Occurrence
	raw  string
	call *shortcode.Shortcode
}

func (s slot) literal() string {
	if s.occ.Escaped {
		return s.occ.Literal()
	}
	return s.raw
}

type placeholders struct {
	prefix string
	any    *regexp.Regexp
	whole  *regexp.Regexp
}

// newPlaceholders returns placeholder tokens made of letters and digits
// only, so the markup parser keeps each one inside a single text node.
func newPlaceholders() placeholders {
	prefix := "gls" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	q := regexp.QuoteMeta(prefix)
	return placeholders{
		prefix: prefix,
		any:    regexp.MustCompile(q + `(\d+)x`),
		whole:  regexp.MustCompile(`^` + q + `(\d+)x$`),
	}
}

func (p placeholders) token(i int) string {
	return fmt.Sprintf("%s%dx", p.prefix, i)
}

type prepared struct {
	text  string
	slots []slot
	ph    placeholders
}

// prepare replaces every shortcode in body with a placeholder and parses
// the glossary ones.
func prepare(body string) (prepared, error) {
	p := prepared{ph: newPlaceholders()}
	var sb strings.Builder
	prev := 0
	for i, occ := range shortcode.Scan(body) {
		sb.WriteString(body[prev:occ.Start])
		s := slot{occ: occ, raw: body[occ.Start:occ.End]}
		if !occ.Escaped && isGlossary(occ.Inner) {
			call, err := shortcode.Parse(occ.Inner)
			if err != nil {
				return prepared{}, err
			}
			s.call = call
		}
		p.slots = append(p.slots, s)
		sb.WriteString(p.ph.token(i))
		prev = occ.End
	}
	sb.WriteString(body[prev:])
	p.text = sb.String()
	return p, nil
}

func isGlossary(inner string) bool {
	fields := strings.Fields(inner)
	return len(fields) > 0 && fields[0] == glossary.ShortcodeName
}

// splicer walks a parsed body in document order and swaps placeholders for
// resolved content. The first resolution error stops the walk.
type splicer struct {
	prepared
	resolve func(call *shortcode.Shortcode) (glossary.Output, error)
	// tables resolved inside a paragraph, emitted after it
	hoisted doc.Blocks
	err     error
}

func newSplicer(p prepared, resolve func(call *shortcode.Shortcode) (glossary.Output, error)) *splicer {
	return &splicer{prepared: p, resolve: resolve}
}

func (sp *splicer) blocks(bs doc.Blocks) doc.Blocks {
	if bs == nil {
		return nil
	}
	out := make(doc.Blocks, 0, len(bs))
	for _, b := range bs {
		if sp.err != nil {
			return out
		}
		if i, ok := sp.lonePlaceholder(b); ok && sp.slots[i].call != nil {
			res, err := sp.resolve(sp.slots[i].call)
			if err != nil {
				sp.err = err
				return out
			}
			if res.IsTable() {
				out = append(out, res.Blocks...)
			} else {
				out = append(out, withContent(b, res.Inlines))
			}
			continue
		}

		out = append(out, sp.block(b))
		if len(sp.hoisted) > 0 {
			out = append(out, sp.hoisted...)
			sp.hoisted = nil
		}
	}
	return out
}

// lonePlaceholder reports whether b is a paragraph holding nothing but one
// placeholder.
func (sp *splicer) lonePlaceholder(b doc.Block) (int, bool) {
	var content doc.Inlines
	switch n := b.(type) {
	case doc.Para:
		content = n.Content
	case doc.Plain:
		content = n.Content
	default:
		return 0, false
	}
	var text string
	for _, in := range content {
		switch n := in.(type) {
		case doc.Space, doc.SoftBreak:
		case doc.Str:
			if text != "" {
				return 0, false
			}
			text = n.Text
		default:
			return 0, false
		}
	}
	m := sp.ph.whole.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	i, err := strconv.Atoi(m[1])
	if err != nil || i >= len(sp.slots) {
		return 0, false
	}
	return i, true
}

func withContent(b doc.Block, ins doc.Inlines) doc.Block {
	if _, ok := b.(doc.Plain); ok {
		return doc.Plain{Content: ins}
	}
	return doc.Para{Content: ins}
}

func (sp *splicer) block(b doc.Block) doc.Block {
	switch n := b.(type) {
	case doc.Para:
		return doc.Para{Content: sp.inlines(n.Content)}
	case doc.Plain:
		return doc.Plain{Content: sp.inlines(n.Content)}
	case doc.Header:
		return doc.Header{Level: n.Level, Attr: n.Attr, Content: sp.inlines(n.Content)}
	case doc.CodeBlock:
		return doc.CodeBlock{Language: n.Language, Text: sp.restore(n.Text)}
	case doc.RawBlock:
		return doc.RawBlock{Format: n.Format, Text: sp.restore(n.Text)}
	case doc.BlockQuote:
		return doc.BlockQuote{Content: sp.blocks(n.Content)}
	case doc.Div:
		return doc.Div{Attr: n.Attr, Content: sp.blocks(n.Content)}
	case doc.BulletList:
		return doc.BulletList{Items: sp.items(n.Items)}
	case doc.OrderedList:
		return doc.OrderedList{Start: n.Start, Items: sp.items(n.Items)}
	case doc.DefinitionList:
		items := make([]doc.DefinitionItem, len(n.Items))
		for i, it := range n.Items {
			items[i] = doc.DefinitionItem{Term: sp.inlines(it.Term), Definitions: sp.items(it.Definitions)}
		}
		return doc.DefinitionList{Items: items}
	}
	return b
}

func (sp *splicer) items(items []doc.Blocks) []doc.Blocks {
	if items == nil {
		return nil
	}
	out := make([]doc.Blocks, len(items))
	for i, it := range items {
		out[i] = sp.blocks(it)
	}
	return out
}

func (sp *splicer) inlines(ins doc.Inlines) doc.Inlines {
	if ins == nil {
		return nil
	}
	out := make(doc.Inlines, 0, len(ins))
	for _, in := range ins {
		if sp.err != nil {
			return out
		}
		switch n := in.(type) {
		case doc.Str:
			out = append(out, sp.str(n.Text)...)
		case doc.Emph:
			out = append(out, doc.Emph{Content: sp.inlines(n.Content)})
		case doc.Strong:
			out = append(out, doc.Strong{Content: sp.inlines(n.Content)})
		case doc.Strikeout:
			out = append(out, doc.Strikeout{Content: sp.inlines(n.Content)})
		case doc.Link:
			out = append(out, doc.Link{Content: sp.inlines(n.Content), URL: sp.restore(n.URL), Title: sp.restore(n.Title)})
		case doc.Image:
			out = append(out, doc.Image{Alt: sp.inlines(n.Alt), URL: sp.restore(n.URL), Title: sp.restore(n.Title)})
		case doc.Span:
			out = append(out, doc.Span{Attr: n.Attr, Content: sp.inlines(n.Content)})
		case doc.Note:
			out = append(out, doc.Note{Content: sp.blocks(n.Content)})
		case doc.Code:
			out = append(out, doc.Code{Text: sp.restore(n.Text)})
		case doc.RawInline:
			out = append(out, doc.RawInline{Format: n.Format, Text: sp.restore(n.Text)})
		default:
			out = append(out, in)
		}
	}
	return out
}

// str expands the placeholders inside a text node.
func (sp *splicer) str(text string) doc.Inlines {
	locs := sp.ph.any.FindAllStringSubmatchIndex(text, -1)
	if locs == nil {
		return doc.Inlines{doc.Str{Text: text}}
	}
	var out doc.Inlines
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			out = append(out, doc.Str{Text: text[prev:loc[0]]})
		}
		prev = loc[1]
		i, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil || i >= len(sp.slots) {
			out = append(out, doc.Str{Text: text[loc[0]:loc[1]]})
			continue
		}
		out = append(out, sp.expand(i)...)
		if sp.err != nil {
			return out
		}
	}
	if prev < len(text) {
		out = append(out, doc.Str{Text: text[prev:]})
	}
	return out
}

func (sp *splicer) expand(i int) doc.Inlines {
	s := sp.slots[i]
	if s.call == nil {
		return doc.Text(s.literal())
	}
	res, err := sp.resolve(s.call)
	if err != nil {
		sp.err = err
		return nil
	}
	if res.IsTable() {
		sp.hoisted = append(sp.hoisted, res.Blocks...)
		return nil
	}
	return res.Inlines
}

// restore puts the original shortcode text back where content is taken
// literally: code, raw markup, URLs.
func (sp *splicer) restore(text string) string {
	return sp.ph.any.ReplaceAllStringFunc(text, func(tok string) string {
		m := sp.ph.any.FindStringSubmatch(tok)
		i, err := strconv.Atoi(m[1])
		if err != nil || i >= len(sp.slots) {
			return tok
		}
		return sp.slots[i].literal()
	})
}
