// Package writer serializes rendered documents for each backend.
package writer

import (
	"github.com/arthur-debert/glossary/pkg/assets"
	"github.com/arthur-debert/glossary/pkg/errors"
	"github.com/arthur-debert/glossary/pkg/pipeline"
	"github.com/arthur-debert/glossary/pkg/render"
)

// Options tune the writers.
type Options struct {
	// TerminalStyle is a glamour style name or path; "auto" detects it.
	TerminalStyle string
	// Width wraps terminal output; 0 keeps glamour's default.
	Width int
}

// DefaultOptions returns the options used by the command line.
func DefaultOptions() Options {
	return Options{TerminalStyle: "auto"}
}

// Write serializes d for backend b.
func Write(b render.Backend, d *pipeline.Document, opts Options) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch b {
	case render.BackendHTML:
		var list []assets.Asset
		list, err = resolveAssets(d.Assets)
		if err == nil {
			out, err = HTML(d, list)
		}
	case render.BackendMarkdown:
		out = Markdown(d)
	case render.BackendDocBook:
		out, err = DocBook(d)
	case render.BackendTerminal:
		out, err = Terminal(d, opts)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "no writer for backend %s", b)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRender, "writing %s as %s", d.Name, b).
			WithDetail("document", d.Name)
	}
	return out, nil
}

// Extension returns the file extension for output of backend b.
func Extension(b render.Backend) string {
	switch b {
	case render.BackendHTML:
		return ".html"
	case render.BackendMarkdown:
		return ".md"
	case render.BackendDocBook:
		return ".xml"
	default:
		return ".txt"
	}
}

func resolveAssets(names []string) ([]assets.Asset, error) {
	out := make([]assets.Asset, 0, len(names))
	for _, name := range names {
		a, err := assets.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
