package writer

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/glossary/pkg/doc"
	"github.com/arthur-debert/glossary/pkg/pipeline"
	"gopkg.in/yaml.v3"
)

// Markdown writes d as markdown with [^n] footnotes and
// "term\n:   definition" definition lists. Raw HTML is kept.
func Markdown(d *pipeline.Document) []byte {
	w := &mdWriter{}
	var sb strings.Builder

	if title := d.Title(); title != "" {
		meta, err := yaml.Marshal(map[string]string{"title": title})
		if err == nil {
			sb.WriteString("---\n")
			sb.Write(meta)
			sb.WriteString("---\n\n")
		}
	}

	body := w.blocks(d.Body)
	sb.WriteString(body)

	for i := 0; i < len(w.notes); i++ {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		label := fmt.Sprintf("[^%d]: ", i+1)
		sb.WriteString(prefixLines(w.blocks(w.notes[i]), label, "    "))
	}
	if sb.Len() > 0 {
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

type mdWriter struct {
	notes []doc.Blocks
}

func (w *mdWriter) blocks(bs doc.Blocks) string {
	parts := make([]string, 0, len(bs))
	for _, b := range bs {
		if s := w.block(b); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (w *mdWriter) block(b doc.Block) string {
	switch n := b.(type) {
	case doc.Para:
		return w.inlines(n.Content)
	case doc.Plain:
		return w.inlines(n.Content)
	case doc.Header:
		return strings.Repeat("#", clamp(n.Level, 1, 6)) + " " + w.inlines(n.Content)
	case doc.CodeBlock:
		fence := fenceFor(n.Text, '`', 3)
		return fence + n.Language + "\n" + strings.TrimSuffix(n.Text, "\n") + "\n" + fence
	case doc.BlockQuote:
		return prefixLines(w.blocks(n.Content), "> ", "> ")
	case doc.BulletList:
		items := make([]string, len(n.Items))
		for i, it := range n.Items {
			items[i] = prefixLines(w.blocks(it), "- ", "  ")
		}
		return strings.Join(items, "\n")
	case doc.OrderedList:
		start := n.Start
		if start == 0 {
			start = 1
		}
		items := make([]string, len(n.Items))
		for i, it := range n.Items {
			marker := fmt.Sprintf("%d. ", start+i)
			items[i] = prefixLines(w.blocks(it), marker, strings.Repeat(" ", len(marker)))
		}
		return strings.Join(items, "\n")
	case doc.DefinitionList:
		items := make([]string, len(n.Items))
		for i, it := range n.Items {
			var sb strings.Builder
			sb.WriteString(w.inlines(it.Term))
			for _, def := range it.Definitions {
				sb.WriteByte('\n')
				sb.WriteString(prefixLines(w.blocks(def), ":   ", "    "))
			}
			items[i] = sb.String()
		}
		return strings.Join(items, "\n\n")
	case doc.HorizontalRule:
		return "* * *"
	case doc.RawBlock:
		if n.Format == "html" || n.Format == "markdown" {
			return strings.TrimRight(n.Text, "\n")
		}
	case doc.Div:
		return w.blocks(n.Content)
	}
	return ""
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"`", "\\`",
	"<", `\<`,
)

func (w *mdWriter) inlines(ins doc.Inlines) string {
	var sb strings.Builder
	for _, in := range ins {
		switch n := in.(type) {
		case doc.Str:
			sb.WriteString(mdEscaper.Replace(n.Text))
		case doc.Space:
			sb.WriteByte(' ')
		case doc.SoftBreak:
			sb.WriteByte('\n')
		case doc.LineBreak:
			sb.WriteString("\\\n")
		case doc.Emph:
			sb.WriteString("*" + w.inlines(n.Content) + "*")
		case doc.Strong:
			sb.WriteString("**" + w.inlines(n.Content) + "**")
		case doc.Strikeout:
			sb.WriteString("~~" + w.inlines(n.Content) + "~~")
		case doc.Code:
			sb.WriteString(codeSpan(n.Text))
		case doc.Link:
			sb.WriteString("[" + w.inlines(n.Content) + "](" + n.URL + linkTitle(n.Title) + ")")
		case doc.Image:
			sb.WriteString("![" + w.inlines(n.Alt) + "](" + n.URL + linkTitle(n.Title) + ")")
		case doc.Span:
			sb.WriteString(w.inlines(n.Content))
		case doc.Note:
			w.notes = append(w.notes, n.Content)
			fmt.Fprintf(&sb, "[^%d]", len(w.notes))
		case doc.RawInline:
			if n.Format == "html" || n.Format == "markdown" {
				sb.WriteString(n.Text)
			}
		}
	}
	return sb.String()
}

func linkTitle(title string) string {
	if title == "" {
		return ""
	}
	return ` "` + strings.ReplaceAll(title, `"`, `\"`) + `"`
}

// prefixLines prefixes the first line of s with first and the others with
// rest. Blank lines only get the trimmed prefix.
func prefixLines(s, first, rest string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		prefix := rest
		if i == 0 {
			prefix = first
		}
		if line == "" {
			lines[i] = strings.TrimRight(prefix, " ")
		} else {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func longestRun(s string, c byte) int {
	longest, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			cur++
			if cur > longest {
				longest = cur
			}
		} else {
			cur = 0
		}
	}
	return longest
}

func fenceFor(s string, c byte, minLen int) string {
	n := longestRun(s, c) + 1
	if n < minLen {
		n = minLen
	}
	return strings.Repeat(string(c), n)
}

func codeSpan(s string) string {
	fence := fenceFor(s, '`', 1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
