package writer

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/glossary/pkg/doc"
	"github.com/arthur-debert/glossary/pkg/pipeline"
	"github.com/arthur-debert/glossary/pkg/render"
	"github.com/beevik/etree"
)

const (
	docbookNS = "http://docbook.org/ns/docbook"
	xlinkNS   = "http://www.w3.org/1999/xlink"
)

// DocBook writes d as a DocBook 5 article. Glossary spans become
// glossterm elements and notes become footnotes in place.
func DocBook(d *pipeline.Document) ([]byte, error) {
	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	article := out.CreateElement("article")
	article.CreateAttr("xmlns", docbookNS)
	article.CreateAttr("xmlns:xlink", xlinkNS)
	article.CreateAttr("version", "5.0")
	if title := d.Title(); title != "" {
		article.CreateElement("title").SetText(title)
	}

	dbBlocks(article, d.Body)

	b, err := out.WriteToBytes()
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func dbBlocks(parent *etree.Element, bs doc.Blocks) {
	for _, b := range bs {
		dbBlock(parent, b)
	}
}

func dbBlock(parent *etree.Element, b doc.Block) {
	switch n := b.(type) {
	case doc.Para:
		dbInlines(parent.CreateElement("para"), n.Content)
	case doc.Plain:
		dbInlines(parent.CreateElement("para"), n.Content)
	case doc.Header:
		h := parent.CreateElement("bridgehead")
		h.CreateAttr("renderas", "sect"+strconv.Itoa(clamp(n.Level, 1, 5)))
		dbInlines(h, n.Content)
	case doc.CodeBlock:
		pl := parent.CreateElement("programlisting")
		if n.Language != "" {
			pl.CreateAttr("language", n.Language)
		}
		pl.CreateCData(strings.TrimSuffix(n.Text, "\n"))
	case doc.BlockQuote:
		dbBlocks(parent.CreateElement("blockquote"), n.Content)
	case doc.BulletList:
		l := parent.CreateElement("itemizedlist")
		for _, it := range n.Items {
			dbBlocks(l.CreateElement("listitem"), it)
		}
	case doc.OrderedList:
		l := parent.CreateElement("orderedlist")
		for _, it := range n.Items {
			dbBlocks(l.CreateElement("listitem"), it)
		}
	case doc.DefinitionList:
		l := parent.CreateElement("variablelist")
		for _, it := range n.Items {
			entry := l.CreateElement("varlistentry")
			dbInlines(entry.CreateElement("term"), it.Term)
			item := entry.CreateElement("listitem")
			for _, def := range it.Definitions {
				dbBlocks(item, def)
			}
			if len(item.ChildElements()) == 0 {
				item.CreateElement("para")
			}
		}
	case doc.RawBlock:
		if n.Format == "docbook" {
			dbRaw(parent, n.Text)
		}
	case doc.Div:
		dbBlocks(parent, n.Content)
	}
}

func dbInlines(parent *etree.Element, ins doc.Inlines) {
	for _, in := range ins {
		switch n := in.(type) {
		case doc.Str:
			parent.CreateText(n.Text)
		case doc.Space, doc.SoftBreak:
			parent.CreateText(" ")
		case doc.LineBreak:
			parent.CreateText("\n")
		case doc.Emph:
			dbInlines(parent.CreateElement("emphasis"), n.Content)
		case doc.Strong:
			e := parent.CreateElement("emphasis")
			e.CreateAttr("role", "strong")
			dbInlines(e, n.Content)
		case doc.Strikeout:
			e := parent.CreateElement("emphasis")
			e.CreateAttr("role", "strikethrough")
			dbInlines(e, n.Content)
		case doc.Code:
			parent.CreateElement("literal").SetText(n.Text)
		case doc.Link:
			l := parent.CreateElement("link")
			l.CreateAttr("xlink:href", n.URL)
			dbInlines(l, n.Content)
		case doc.Image:
			media := parent.CreateElement("inlinemediaobject")
			data := media.CreateElement("imageobject").CreateElement("imagedata")
			data.CreateAttr("fileref", n.URL)
			if alt := doc.Stringify(n.Alt); alt != "" {
				media.CreateElement("alt").SetText(alt)
			}
		case doc.Span:
			if !n.Attr.HasClass(render.ClassGlossary) {
				dbInlines(parent.CreateElement("phrase"), n.Content)
				continue
			}
			// footnotes follow the glossterm instead of nesting in it
			var label, notes doc.Inlines
			for _, c := range n.Content {
				if _, ok := c.(doc.Note); ok {
					notes = append(notes, c)
				} else {
					label = append(label, c)
				}
			}
			dbInlines(parent.CreateElement("glossterm"), label)
			dbInlines(parent, notes)
		case doc.Note:
			dbBlocks(parent.CreateElement("footnote"), n.Content)
		case doc.RawInline:
			if n.Format == "docbook" {
				dbRaw(parent, n.Text)
			}
		}
	}
}

// dbRaw parses raw DocBook markup and adopts its elements. Markup that is
// not well-formed is kept as text.
func dbRaw(parent *etree.Element, src string) {
	frag := etree.NewDocument()
	if err := frag.ReadFromString("<raw>" + src + "</raw>"); err != nil {
		parent.CreateText(src)
		return
	}
	children := append([]etree.Token(nil), frag.Root().Child...)
	for _, child := range children {
		parent.AddChild(child)
	}
}
