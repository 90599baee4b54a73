// Package assets holds the stylesheet and script the interactive HTML
// output depends on, and the per-render set of required assets.
package assets

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/aymerick/douceur/parser"
)

// Kind tells writers how to embed an asset.
type Kind int

const (
	Stylesheet Kind = iota
	Script
)

// Asset is a named presentation dependency.
type Asset struct {
	Name    string
	Kind    Kind
	Content string
}

// Names of the bundled assets.
const (
	GlossaryCSS = "glossary.css"
	GlossaryJS  = "glossary.js"
)

//go:embed embedded/glossary.css
var glossaryCSS string

//go:embed embedded/glossary.js
var glossaryJS string

var (
	normalizeOnce sync.Once
	normalizedCSS string
	normalizeErr  error
)

// stylesheet returns the bundled CSS, parsed and re-serialised so that
// syntax errors surface at first use instead of in a browser.
func stylesheet() (string, error) {
	normalizeOnce.Do(func() {
		sheet, err := parser.Parse(glossaryCSS)
		if err != nil {
			normalizeErr = fmt.Errorf("bundled stylesheet: %w", err)
			return
		}
		normalizedCSS = sheet.String()
	})
	return normalizedCSS, normalizeErr
}

// Lookup returns a bundled asset by name.
func Lookup(name string) (Asset, error) {
	switch name {
	case GlossaryCSS:
		css, err := stylesheet()
		if err != nil {
			return Asset{}, err
		}
		return Asset{Name: name, Kind: Stylesheet, Content: css}, nil
	case GlossaryJS:
		return Asset{Name: name, Kind: Script, Content: glossaryJS}, nil
	}
	return Asset{}, fmt.Errorf("unknown asset %q", name)
}

// Set collects the assets required while rendering one document.
// Requiring an asset twice has no effect.
type Set struct {
	mu    sync.Mutex
	names []string
	seen  map[string]bool
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{seen: map[string]bool{}}
}

// Require adds name to the set unless it is already there.
func (s *Set) Require(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen[name] {
		return
	}
	s.seen[name] = true
	s.names = append(s.names, name)
}

// Names returns the required asset names in the order first required.
func (s *Set) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.names...)
}

// List resolves the required assets in the order first required.
func (s *Set) List() ([]Asset, error) {
	var out []Asset
	for _, name := range s.Names() {
		a, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
