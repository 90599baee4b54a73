// Package glossary resolves glossary shortcode occurrences: it merges the
// configuration layers, finds the display text and definition, records the
// term for the glossary table and hands the result to a render.Strategy.
package glossary

import (
	"strings"

	"github.com/arthur-debert/glossary/pkg/config"
	"github.com/arthur-debert/glossary/pkg/definitions"
	"github.com/arthur-debert/glossary/pkg/doc"
	"github.com/arthur-debert/glossary/pkg/errors"
	"github.com/arthur-debert/glossary/pkg/logging"
	"github.com/arthur-debert/glossary/pkg/registry"
	"github.com/arthur-debert/glossary/pkg/render"
)

// ShortcodeName is the name the resolver answers to: {{< glossary ... >}}.
const ShortcodeName = "glossary"

// Shortcode option names that are not configuration keys.
const (
	OptDisplay = "display"
	OptDef     = "def"
	OptTable   = "table"
)

// MetaKey is the document metadata block holding document-level options.
const MetaKey = "glossary"

// Invocation is one occurrence of the glossary shortcode.
type Invocation struct {
	Args    []string
	Options map[string]string
	// Meta is the document metadata; only Meta["glossary"] is read.
	Meta map[string]interface{}
}

// Output is the content an occurrence is replaced with. Term mode fills
// Inlines, table mode fills Blocks.
type Output struct {
	Inlines doc.Inlines
	Blocks  doc.Blocks
}

// IsTable reports whether the output is the aggregate glossary table.
func (o Output) IsTable() bool {
	return o.Blocks != nil
}

// Resolver resolves invocations against a definitions file and records
// resolved terms in Registry.
type Resolver struct {
	Registry *registry.Terms
	Reader   *definitions.Reader
	// Defaults sit between the library defaults and the document layer.
	Defaults config.Options
	Strategy render.Strategy
}

// Resolve handles one invocation.
func (r *Resolver) Resolve(inv Invocation) (Output, error) {
	log := logging.GetLogger("glossary.resolver")

	if _, ok := inv.Options[OptTable]; ok {
		entries := r.Registry.SnapshotSorted()
		log.Debug().Int("entries", len(entries)).Msg("Rendering glossary table")
		return Output{Blocks: nonNil(r.Strategy.RenderTable(entries))}, nil
	}

	if len(inv.Args) == 0 || inv.Args[0] == "" {
		return Output{}, errors.New(errors.ErrInvalidInput, "glossary shortcode needs a term argument")
	}
	display := inv.Args[0]
	term := Normalize(display)
	if v, ok := inv.Options[OptDisplay]; ok {
		display = v
	}

	cfg, err := Settings(r.Defaults, inv)
	if err != nil {
		return Output{}, errors.Wrapf(err, errors.GetErrorCode(err), "term %q", term).WithDetail("term", term)
	}

	definition, explicit := inv.Options[OptDef]
	if !explicit {
		defs, err := r.Reader.Load(cfg.Path)
		if err != nil {
			return Output{}, err
		}
		definition, _ = defs.Lookup(term)
	}

	if cfg.AddToTable {
		r.Registry.Record(term, definition)
	}

	log.Debug().
		Str("term", term).
		Bool("explicit_def", explicit).
		Bool("defined", definition != "").
		Str("popup", cfg.Popup.String()).
		Msg("Resolved glossary term")

	return Output{Inlines: r.Strategy.RenderTerm(render.TermView{
		Term:       term,
		Display:    display,
		Definition: definition,
		Popup:      cfg.Popup,
	})}, nil
}

// Settings merges the library defaults, defaults, the document layer of inv
// and its call layer, in that order.
func Settings(defaults config.Options, inv Invocation) (config.Resolved, error) {
	docLayer, err := config.ParseOptions(metaOptions(inv.Meta))
	if err != nil {
		return config.Resolved{}, err
	}
	callLayer, err := config.ParseOptions(config.StringMap(inv.Options))
	if err != nil {
		return config.Resolved{}, err
	}
	return config.Merge(config.LibraryDefaults(), defaults, docLayer, callLayer), nil
}

// Normalize derives the lookup key used for the definitions file and the
// term registry from authored display text.
func Normalize(display string) string {
	return strings.ToLower(display)
}

func metaOptions(meta map[string]interface{}) map[string]interface{} {
	switch m := meta[MetaKey].(type) {
	case map[string]interface{}:
		return m
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			if s, ok := k.(string); ok {
				out[s] = v
			}
		}
		return out
	}
	return nil
}

func nonNil(bs doc.Blocks) doc.Blocks {
	if bs == nil {
		return doc.Blocks{}
	}
	return bs
}
