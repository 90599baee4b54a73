package render

import (
	"fmt"
	"strings"
)

// Backend is the output format a document is rendered for.
type Backend int

const (
	// BackendHTML renders interactive HTML with click-triggered popups
	BackendHTML Backend = iota
	// BackendMarkdown renders markdown with footnotes and definition lists
	BackendMarkdown
	// BackendDocBook renders DocBook XML
	BackendDocBook
	// BackendTerminal renders styled text for a terminal
	BackendTerminal
)

// String returns the canonical name of the backend
func (b Backend) String() string {
	switch b {
	case BackendHTML:
		return "html"
	case BackendMarkdown:
		return "markdown"
	case BackendDocBook:
		return "docbook"
	case BackendTerminal:
		return "term"
	default:
		return "unknown"
	}
}

// Interactive reports whether the backend can carry popups.
func (b Backend) Interactive() bool {
	return b == BackendHTML
}

// ParseBackend parses a backend name
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "html5":
		return BackendHTML, nil
	case "md", "markdown", "gfm":
		return BackendMarkdown, nil
	case "docbook", "docbook5", "xml":
		return BackendDocBook, nil
	case "term", "terminal":
		return BackendTerminal, nil
	default:
		return BackendHTML, fmt.Errorf("unknown backend: %s", s)
	}
}

// Backends lists every backend in declaration order.
func Backends() []Backend {
	return []Backend{BackendHTML, BackendMarkdown, BackendDocBook, BackendTerminal}
}
