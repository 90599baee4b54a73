package render

import (
	"github.com/arthur-debert/glossary/pkg/doc"
	"github.com/arthur-debert/glossary/pkg/markup"
	"github.com/arthur-debert/glossary/pkg/registry"
)

// ClassGlossary marks spans and tables produced for glossary occurrences.
const ClassGlossary = "glossary"

// Structural renders for backends without popups. A definition becomes a
// footnote attached to the display span.
type Structural struct{}

// RenderTerm returns a glossary span, with the definition as a note when
// the popup is enabled and the definition is not empty.
func (Structural) RenderTerm(v TermView) doc.Inlines {
	label := v.label()
	if !v.annotated() {
		return doc.Inlines{doc.Span{Attr: glossaryAttr(), Content: label}}
	}
	// the label may be shared with other occurrences
	content := label.Clone()
	content = append(content, doc.Note{Content: markup.ParseBlocks(v.Definition)})
	return doc.Inlines{doc.Span{Attr: glossaryAttr(), Content: content}}
}

// RenderTable returns a definition list of entries in a glossary_table div.
func (Structural) RenderTable(entries []registry.Entry) doc.Blocks {
	items := make([]doc.DefinitionItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, doc.DefinitionItem{
			Term:        markup.ParseInlines(e.Term),
			Definitions: []doc.Blocks{markup.ParseBlocks(e.Definition)},
		})
	}
	return doc.Blocks{doc.Div{
		Attr:    doc.Attr{Classes: []string{ClassGlossary + "_table"}},
		Content: doc.Blocks{doc.DefinitionList{Items: items}},
	}}
}

func glossaryAttr() doc.Attr {
	return doc.Attr{Classes: []string{ClassGlossary}}
}
