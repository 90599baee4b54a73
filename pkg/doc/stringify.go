package doc

import "strings"

// Stringify flattens inline or block content to plain text. Notes are
// dropped, raw markup is dropped, blocks are separated by blank lines.
func Stringify(content interface{}) string {
	var sb strings.Builder
	switch c := content.(type) {
	case Inlines:
		writeInlines(&sb, c)
	case Blocks:
		writeBlocks(&sb, c)
	case Inline:
		writeInlines(&sb, Inlines{c})
	case Block:
		writeBlocks(&sb, Blocks{c})
	case string:
		return c
	}
	return strings.TrimSpace(sb.String())
}

func writeInlines(sb *strings.Builder, ins Inlines) {
	for _, in := range ins {
		switch n := in.(type) {
		case Str:
			sb.WriteString(n.Text)
		case Space, SoftBreak, LineBreak:
			sb.WriteByte(' ')
		case Code:
			sb.WriteString(n.Text)
		case Emph:
			writeInlines(sb, n.Content)
		case Strong:
			writeInlines(sb, n.Content)
		case Strikeout:
			writeInlines(sb, n.Content)
		case Link:
			writeInlines(sb, n.Content)
		case Image:
			writeInlines(sb, n.Alt)
		case Span:
			writeInlines(sb, n.Content)
		}
	}
}

func writeBlocks(sb *strings.Builder, bs Blocks) {
	for i, b := range bs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		switch n := b.(type) {
		case Plain:
			writeInlines(sb, n.Content)
		case Para:
			writeInlines(sb, n.Content)
		case Header:
			writeInlines(sb, n.Content)
		case CodeBlock:
			sb.WriteString(n.Text)
		case BlockQuote:
			writeBlocks(sb, n.Content)
		case Div:
			writeBlocks(sb, n.Content)
		case BulletList:
			writeItems(sb, n.Items)
		case OrderedList:
			writeItems(sb, n.Items)
		case DefinitionList:
			for j, it := range n.Items {
				if j > 0 {
					sb.WriteByte('\n')
				}
				writeInlines(sb, it.Term)
				for _, d := range it.Definitions {
					sb.WriteString(": ")
					writeBlocks(sb, d)
				}
			}
		}
	}
}

func writeItems(sb *strings.Builder, items []Blocks) {
	for j, it := range items {
		if j > 0 {
			sb.WriteByte('\n')
		}
		writeBlocks(sb, it)
	}
}
