// Package pipeline renders whole documents: it splits front matter, finds
// glossary shortcodes, resolves them in document order and splices the
// results into the parsed body.
//
// A Session spans one rendering run. Every document rendered by the same
// Session shares its term registry, so a glossary table lists the terms of
// all documents rendered before it.
package pipeline

import (
	"github.com/arthur-debert/glossary/pkg/assets"
	"github.com/arthur-debert/glossary/pkg/config"
	"github.com/arthur-debert/glossary/pkg/definitions"
	"github.com/arthur-debert/glossary/pkg/doc"
	"github.com/arthur-debert/glossary/pkg/errors"
	"github.com/arthur-debert/glossary/pkg/frontmatter"
	"github.com/arthur-debert/glossary/pkg/glossary"
	"github.com/arthur-debert/glossary/pkg/logging"
	"github.com/arthur-debert/glossary/pkg/markup"
	"github.com/arthur-debert/glossary/pkg/registry"
	"github.com/arthur-debert/glossary/pkg/render"
	"github.com/arthur-debert/glossary/pkg/shortcode"
	"github.com/spf13/afero"
)

// Document is a rendered document, ready for a writer.
type Document struct {
	Name string
	Meta map[string]interface{}
	Body doc.Blocks
	// Assets names the presentation assets the body depends on.
	Assets []string
}

// Title returns the title from the document metadata, if any.
func (d *Document) Title() string {
	if t, ok := d.Meta["title"].(string); ok {
		return t
	}
	return ""
}

// Config configures a Session.
type Config struct {
	// FS holds the definitions file. Relative paths resolve against it.
	FS       afero.Fs
	Backend  render.Backend
	Defaults config.Options
	// IDs defaults to random UUID suffixes.
	IDs render.IDSource
}

// Session is one rendering run.
type Session struct {
	backend  render.Backend
	terms    *registry.Terms
	reader   *definitions.Reader
	defaults config.Options
	ids      render.IDSource
}

// NewSession creates a Session with an empty term registry.
func NewSession(cfg Config) *Session {
	fsys := cfg.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	ids := cfg.IDs
	if ids == nil {
		ids = render.UUIDSource{}
	}
	return &Session{
		backend:  cfg.Backend,
		terms:    registry.NewTerms(),
		reader:   definitions.NewReader(fsys),
		defaults: cfg.Defaults,
		ids:      ids,
	}
}

// Backend returns the backend the session renders for.
func (s *Session) Backend() render.Backend { return s.backend }

// Terms returns the session's term registry.
func (s *Session) Terms() *registry.Terms { return s.terms }

// Reader returns the session's definitions reader.
func (s *Session) Reader() *definitions.Reader { return s.reader }

// Settings returns the session defaults merged over the library defaults.
func (s *Session) Settings() config.Resolved {
	return config.Merge(config.LibraryDefaults(), s.defaults)
}

func (s *Session) resolver(set *assets.Set) *glossary.Resolver {
	return &glossary.Resolver{
		Registry: s.terms,
		Reader:   s.reader,
		Defaults: s.defaults,
		Strategy: render.For(s.backend, render.Deps{IDs: s.ids, Assets: set}),
	}
}

// Render renders one document. Glossary shortcodes are resolved in
// document order; any other shortcode is kept as written.
func (s *Session) Render(name string, src []byte) (*Document, error) {
	log := logging.GetLogger("pipeline").With().Str("document", name).Logger()
	done := logging.LogOperationStart(log, "render")
	defer done()

	meta, body, err := frontmatter.Parse(src)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid front matter in %s", name).
			WithDetail("document", name)
	}

	p, err := prepare(string(body))
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "in %s", name).WithDetail("document", name)
	}

	set := assets.NewSet()
	resolver := s.resolver(set)
	sp := newSplicer(p, func(call *shortcode.Shortcode) (glossary.Output, error) {
		return resolver.Resolve(glossary.Invocation{Args: call.Args, Options: call.Options, Meta: meta})
	})

	blocks := sp.blocks(markup.ParseBlocks(p.text))
	if sp.err != nil {
		return nil, errors.Wrapf(sp.err, errors.GetErrorCode(sp.err), "in %s", name).WithDetail("document", name)
	}

	log.Debug().Int("shortcodes", len(p.slots)).Int("terms", s.terms.Len()).Msg("Document rendered")
	return &Document{Name: name, Meta: meta, Body: blocks, Assets: set.Names()}, nil
}

// Input is a named document source.
type Input struct {
	Name   string
	Source []byte
}

// Result is the outcome of rendering one Input.
type Result struct {
	Doc *Document
	Err error
}

// RenderAll renders inputs in order. A failing document does not stop the
// others.
func (s *Session) RenderAll(inputs []Input) []Result {
	log := logging.GetLogger("pipeline")
	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		d, err := s.Render(in.Name, in.Source)
		if err != nil {
			log.Error().Err(err).Str("document", in.Name).Msg("Document failed to render")
		}
		results = append(results, Result{Doc: d, Err: err})
	}
	return results
}

// RecordDefinitions records every term of the definitions file at path
// (the configured path when empty) in the registry.
func (s *Session) RecordDefinitions(path string) error {
	if path == "" {
		path = s.Settings().Path
	}
	defs, err := s.reader.Load(path)
	if err != nil {
		return err
	}
	for _, term := range defs.Terms() {
		def, _ := defs.Lookup(term)
		s.terms.Record(term, def)
	}
	return nil
}

// Table renders a document holding only the glossary table.
func (s *Session) Table(name string) (*Document, error) {
	set := assets.NewSet()
	out, err := s.resolver(set).Resolve(glossary.Invocation{
		Options: map[string]string{glossary.OptTable: "true"},
	})
	if err != nil {
		return nil, err
	}
	return &Document{Name: name, Meta: map[string]interface{}{}, Body: out.Blocks, Assets: set.Names()}, nil
}
