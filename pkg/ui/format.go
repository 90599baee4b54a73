package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/glossary/pkg/render"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Target is the requested output backend, possibly left to detection.
type Target struct {
	Auto    bool
	Backend render.Backend
}

// String returns the string representation of the target
func (t Target) String() string {
	if t.Auto {
		return "auto"
	}
	return t.Backend.String()
}

// ParseTarget parses "auto" (or empty) or any backend name
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return Target{Auto: true}, nil
	}
	b, err := render.ParseBackend(s)
	if err != nil {
		return Target{}, fmt.Errorf("unknown output target: %s", s)
	}
	return Target{Backend: b}, nil
}

// Resolve returns the backend for output written to out.
func (t Target) Resolve(out *os.File) render.Backend {
	if !t.Auto {
		return t.Backend
	}
	return DetectBackend(out)
}

// DetectBackend picks the terminal backend for color-capable terminals and
// markdown for everything else
func DetectBackend(output *os.File) render.Backend {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return render.BackendMarkdown
	}

	// Check if we're being piped or redirected
	if output == nil || (!isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd())) {
		return render.BackendMarkdown
	}

	// Check terminal color support
	if termenv.ColorProfile() == termenv.Ascii {
		return render.BackendMarkdown
	}

	return render.BackendTerminal
}
