// Package render turns a resolved glossary occurrence into document content
// for a given backend.
//
// Two strategies exist. The interactive strategy (HTML) emits a focusable
// control whose popup carries the definition, and an HTML table for the
// aggregate mode. The structural strategy (every other backend) emits a span
// with the definition attached as a footnote, and a definition list for the
// aggregate mode.
package render

import (
	"strconv"
	"strings"
	"sync"

	"github.com/arthur-debert/glossary/pkg/assets"
	"github.com/arthur-debert/glossary/pkg/config"
	"github.com/arthur-debert/glossary/pkg/doc"
	"github.com/arthur-debert/glossary/pkg/markup"
	"github.com/arthur-debert/glossary/pkg/registry"
	"github.com/google/uuid"
)

// TermView is everything a strategy needs to render one occurrence.
type TermView struct {
	// Term is the lower-cased lookup key.
	Term string
	// Display is the text shown in place of the shortcode.
	Display string
	// Label, when set, is used as the already parsed display content
	// instead of parsing Display.
	Label doc.Inlines
	// Definition is the definition text; empty when the term is unknown.
	Definition string
	Popup      config.PopupMode
}

func (v TermView) label() doc.Inlines {
	if v.Label != nil {
		return v.Label
	}
	return markup.ParseInlines(v.Display)
}

// annotated reports whether the definition should be shown at all.
func (v TermView) annotated() bool {
	return v.Popup != config.PopupNone && v.Definition != ""
}

// Strategy renders occurrences for one backend.
type Strategy interface {
	RenderTerm(v TermView) doc.Inlines
	RenderTable(entries []registry.Entry) doc.Blocks
}

// IDSource hands out identifier suffixes, unique within one render.
type IDSource interface {
	NewID() string
}

// UUIDSource returns random UUID suffixes.
type UUIDSource struct{}

// NewID returns a new random UUID.
func (UUIDSource) NewID() string { return uuid.NewString() }

// Counter returns 1, 2, 3... It is safe for concurrent use.
type Counter struct {
	mu sync.Mutex
	n  int
}

// NewID returns the next number in sequence.
func (c *Counter) NewID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return strconv.Itoa(c.n)
}

// Deps are the collaborators a strategy may need.
type Deps struct {
	IDs    IDSource
	Assets *assets.Set
}

// For returns the strategy for backend b. Missing deps get defaults.
func For(b Backend, deps Deps) Strategy {
	if deps.IDs == nil {
		deps.IDs = UUIDSource{}
	}
	if deps.Assets == nil {
		deps.Assets = assets.NewSet()
	}
	if b.Interactive() {
		return &Interactive{ids: deps.IDs, assets: deps.Assets}
	}
	return Structural{}
}

// Slug lower-cases term and replaces everything but ASCII letters and
// digits with '-'.
func Slug(term string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(term) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}
