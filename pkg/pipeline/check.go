package pipeline

import (
	"bytes"
	"strings"

	"github.com/arthur-debert/glossary/pkg/definitions"
	"github.com/arthur-debert/glossary/pkg/errors"
	"github.com/arthur-debert/glossary/pkg/frontmatter"
	"github.com/arthur-debert/glossary/pkg/glossary"
	"github.com/arthur-debert/glossary/pkg/shortcode"
)

// Finding is one glossary term occurrence found by Check.
type Finding struct {
	Document string
	Line     int
	Term     string
	// Defined is set when the term has a definition, either in the
	// definitions file or through an explicit def option.
	Defined  bool
	Explicit bool
}

// Check lists the glossary terms used in a document and whether each one
// is defined. It resolves nothing and leaves the registry alone.
func (s *Session) Check(name string, src []byte) ([]Finding, error) {
	meta, body, err := frontmatter.Parse(src)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid front matter in %s", name).
			WithDetail("document", name)
	}
	headerLines := bytes.Count(src[:len(src)-len(body)], []byte("\n"))
	text := string(body)

	loaded := map[string]definitions.Definitions{}
	var findings []Finding
	for _, occ := range shortcode.Scan(text) {
		if occ.Escaped || !isGlossary(occ.Inner) {
			continue
		}
		call, err := shortcode.Parse(occ.Inner)
		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "in %s", name).WithDetail("document", name)
		}
		if call.Has(glossary.OptTable) || len(call.Args) == 0 {
			continue
		}

		f := Finding{
			Document: name,
			Line:     1 + headerLines + strings.Count(text[:occ.Start], "\n"),
			Term:     glossary.Normalize(call.Args[0]),
		}
		if _, ok := call.Options[glossary.OptDef]; ok {
			f.Defined, f.Explicit = true, true
			findings = append(findings, f)
			continue
		}

		cfg, err := glossary.Settings(s.defaults, glossary.Invocation{Args: call.Args, Options: call.Options, Meta: meta})
		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "in %s", name).WithDetail("document", name)
		}
		defs, ok := loaded[cfg.Path]
		if !ok {
			defs, err = s.reader.Load(cfg.Path)
			if err != nil {
				return nil, errors.Wrapf(err, errors.GetErrorCode(err), "in %s", name).WithDetail("document", name)
			}
			loaded[cfg.Path] = defs
		}
		_, f.Defined = defs.Lookup(f.Term)
		findings = append(findings, f)
	}
	return findings, nil
}

// Undefined filters findings down to undefined terms.
func Undefined(findings []Finding) []Finding {
	var out []Finding
	for _, f := range findings {
		if !f.Defined {
			out = append(out, f)
		}
	}
	return out
}
