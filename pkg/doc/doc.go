// Package doc is the small structural document model shared by the markup
// parser, the glossary renderers and the output writers.
//
// The model is a tree of inline and block nodes. Renderers build nodes,
// writers serialize them. Nodes are plain values; slices are shared unless a
// caller clones them explicitly with Inlines.Clone or Blocks.Clone.
package doc

// Attr holds the identifier, classes and key/value attributes of a node.
type Attr struct {
	ID         string
	Classes    []string
	Attributes map[string]string
}

// HasClass reports whether c is one of the classes of a.
func (a Attr) HasClass(c string) bool {
	for _, x := range a.Classes {
		if x == c {
			return true
		}
	}
	return false
}

func (a Attr) clone() Attr {
	out := Attr{ID: a.ID}
	if a.Classes != nil {
		out.Classes = append([]string(nil), a.Classes...)
	}
	if a.Attributes != nil {
		out.Attributes = make(map[string]string, len(a.Attributes))
		for k, v := range a.Attributes {
			out.Attributes[k] = v
		}
	}
	return out
}

// Inline is implemented by all inline nodes.
type Inline interface {
	isInline()
}

// Block is implemented by all block nodes.
type Block interface {
	isBlock()
}

// Inlines is an ordered run of inline nodes.
type Inlines []Inline

// Blocks is an ordered sequence of block nodes.
type Blocks []Block

// --- inlines ---------------------------------------------------------------

type Str struct{ Text string }
type Space struct{}
type SoftBreak struct{}
type LineBreak struct{}
type Emph struct{ Content Inlines }
type Strong struct{ Content Inlines }
type Strikeout struct{ Content Inlines }
type Code struct{ Text string }

type Link struct {
	Content Inlines
	URL     string
	Title   string
}

type Image struct {
	Alt   Inlines
	URL   string
	Title string
}

// Span groups inlines under an Attr.
type Span struct {
	Attr    Attr
	Content Inlines
}

// Note is a footnote attached at the position it appears in.
type Note struct{ Content Blocks }

// RawInline is backend-native markup passed through untouched by writers
// of the same format and dropped by the others.
type RawInline struct {
	Format string
	Text   string
}

func (Str) isInline()       {}
func (Space) isInline()     {}
func (SoftBreak) isInline() {}
func (LineBreak) isInline() {}
func (Emph) isInline()      {}
func (Strong) isInline()    {}
func (Strikeout) isInline() {}
func (Code) isInline()      {}
func (Link) isInline()      {}
func (Image) isInline()     {}
func (Span) isInline()      {}
func (Note) isInline()      {}
func (RawInline) isInline() {}

// --- blocks ----------------------------------------------------------------

type Plain struct{ Content Inlines }
type Para struct{ Content Inlines }

type Header struct {
	Level   int
	Attr    Attr
	Content Inlines
}

type CodeBlock struct {
	Language string
	Text     string
}

type BlockQuote struct{ Content Blocks }
type BulletList struct{ Items []Blocks }

type OrderedList struct {
	Start int
	Items []Blocks
}

// DefinitionItem pairs a term with one or more definitions.
type DefinitionItem struct {
	Term        Inlines
	Definitions []Blocks
}

type DefinitionList struct{ Items []DefinitionItem }
type HorizontalRule struct{}

type RawBlock struct {
	Format string
	Text   string
}

type Div struct {
	Attr    Attr
	Content Blocks
}

func (Plain) isBlock()          {}
func (Para) isBlock()           {}
func (Header) isBlock()         {}
func (CodeBlock) isBlock()      {}
func (BlockQuote) isBlock()     {}
func (BulletList) isBlock()     {}
func (OrderedList) isBlock()    {}
func (DefinitionList) isBlock() {}
func (HorizontalRule) isBlock() {}
func (RawBlock) isBlock()       {}
func (Div) isBlock()            {}

// Text builds an inline run from plain text, splitting on spaces the way
// the markup parser does.
func Text(s string) Inlines {
	var out Inlines
	word := []rune{}
	flush := func() {
		if len(word) > 0 {
			out = append(out, Str{Text: string(word)})
			word = word[:0]
		}
	}
	for _, r := range s {
		switch r {
		case ' ', '\t':
			flush()
			if len(out) > 0 {
				if _, ok := out[len(out)-1].(Space); ok {
					continue
				}
			}
			out = append(out, Space{})
		case '\n':
			flush()
			out = append(out, SoftBreak{})
		default:
			word = append(word, r)
		}
	}
	flush()
	return out
}
