package writer

import (
	"github.com/arthur-debert/glossary/pkg/pipeline"
	"github.com/charmbracelet/glamour"
)

// Terminal writes d as markdown rendered for a terminal by glamour.
func Terminal(d *pipeline.Document, opts Options) ([]byte, error) {
	r, err := newTermRenderer(opts)
	if err != nil {
		return nil, err
	}
	out, err := r.RenderBytes(Markdown(d))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func newTermRenderer(opts Options) (*glamour.TermRenderer, error) {
	var options []glamour.TermRendererOption
	if opts.TerminalStyle != "" && opts.TerminalStyle != "auto" {
		options = append(options, glamour.WithStylePath(opts.TerminalStyle))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if opts.Width > 0 {
		options = append(options, glamour.WithWordWrap(opts.Width))
	}
	return glamour.NewTermRenderer(options...)
}

// RenderMarkdown renders a markdown snippet for the terminal, falling back
// to the input when glamour fails.
func RenderMarkdown(md string, opts Options) string {
	r, err := newTermRenderer(opts)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
