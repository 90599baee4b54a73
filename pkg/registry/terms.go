package registry

import (
	"sort"
	"strings"
)

// Entry is one term of the glossary table.
type Entry struct {
	Term       string
	Definition string
}

// Terms records resolved glossary terms, keyed by their lower-cased form.
// Recording the same term again overwrites the earlier definition.
type Terms struct {
	reg Registry[string]
}

// NewTerms returns an empty term registry.
func NewTerms() *Terms {
	return &Terms{reg: New[string]()}
}

// Record stores definition for term. An empty term is ignored: the only
// error Set returns is its empty-name rejection, which is discarded here.
func (t *Terms) Record(term, definition string) {
	_ = t.reg.Set(strings.ToLower(term), definition)
}

// Definition returns the recorded definition of term.
func (t *Terms) Definition(term string) (string, bool) {
	def, err := t.reg.Get(strings.ToLower(term))
	return def, err == nil
}

// Len returns the number of recorded terms.
func (t *Terms) Len() int {
	return t.reg.Count()
}

// SnapshotSorted returns all entries ordered by term.
func (t *Terms) SnapshotSorted() []Entry {
	all := t.reg.All()
	out := make([]Entry, 0, len(all))
	for term, def := range all {
		out = append(out, Entry{Term: term, Definition: def})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Term < out[j].Term })
	return out
}
