package shortcode

import "strings"

const (
	openDelim  = "{{<"
	closeDelim = ">}}"
)

// Occurrence is one shortcode found by Scan. Start and End are byte offsets
// of the whole delimited text, including the extra braces of an escape.
type Occurrence struct {
	Start, End int
	Inner      string
	// Escaped is set for {{{< ... >}}}, which stands for the literal text
	// {{< ... >}}.
	Escaped bool
}

// Literal is the text an escaped occurrence stands for.
func (o Occurrence) Literal() string {
	return openDelim + o.Inner + closeDelim
}

// Scan returns the shortcodes of text in document order. Unterminated
// openers are left alone. A closing delimiter inside a quoted argument does
// not end the shortcode.
func Scan(text string) []Occurrence {
	var out []Occurrence
	i := 0
	for i < len(text) {
		j := strings.Index(text[i:], openDelim)
		if j < 0 {
			break
		}
		start := i + j
		body := start + len(openDelim)
		end := findClose(text, body)
		if end < 0 {
			break
		}
		occ := Occurrence{Start: start, End: end + len(closeDelim), Inner: text[body:end]}
		if start > 0 && text[start-1] == '{' && occ.End < len(text) && text[occ.End] == '}' {
			occ.Start--
			occ.End++
			occ.Escaped = true
		}
		out = append(out, occ)
		i = occ.End
	}
	return out
}

func findClose(text string, from int) int {
	if k := findCloseQuoted(text, from); k >= 0 {
		return k
	}
	// an unbalanced quote, such as an apostrophe in a bare word
	if k := strings.Index(text[from:], closeDelim); k >= 0 {
		return from + k
	}
	return -1
}

func findCloseQuoted(text string, from int) int {
	var quote byte
	for k := from; k < len(text); k++ {
		c := text[k]
		switch {
		case quote != 0:
			if c == '\\' {
				k++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case strings.HasPrefix(text[k:], closeDelim):
			return k
		}
	}
	return -1
}
