// Package frontmatter splits and parses YAML front matter blocks.
package frontmatter

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// Split separates a leading front matter block from the body.
// The block must start on the first line with "---" and end with a line
// that is exactly "---" or "...". ok is false when src has no front matter,
// in which case body is src.
func Split(src []byte) (meta, body []byte, ok bool) {
	src = bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	first, rest, found := cutLine(src)
	if !found || !isFence(first, false) {
		return nil, src, false
	}

	pos := 0
	for {
		line, next, more := cutLine(rest[pos:])
		if isFence(line, true) {
			return rest[:pos], next, true
		}
		if !more {
			return nil, src, false
		}
		pos = len(rest) - len(next)
	}
}

func isFence(line []byte, closing bool) bool {
	s := string(bytes.TrimRight(line, " \t\r"))
	return s == fence || (closing && s == "...")
}

// Parse splits src and decodes the front matter into a map. A document
// without front matter yields an empty map and the whole source as body.
func Parse(src []byte) (map[string]interface{}, []byte, error) {
	meta, body, ok := Split(src)
	out := map[string]interface{}{}
	if !ok {
		return out, body, nil
	}
	if err := yaml.Unmarshal(meta, &out); err != nil {
		return nil, body, err
	}
	if out == nil {
		out = map[string]interface{}{}
	}
	return out, body, nil
}

func cutLine(b []byte) (line, rest []byte, found bool) {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return b[:i], b[i+1:], true
	}
	return b, nil, false
}
