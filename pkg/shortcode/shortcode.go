// Package shortcode finds and parses {{< name args >}} shortcodes in
// document text.
package shortcode

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/arthur-debert/glossary/pkg/errors"
)

// Shortcode is a parsed invocation. Bare words and quoted strings are
// positional arguments; key=value pairs are options.
type Shortcode struct {
	Name    string
	Args    []string
	Options map[string]string
}

// Has reports whether option key was given, whatever its value.
func (s *Shortcode) Has(key string) bool {
	_, ok := s.Options[key]
	return ok
}

type call struct {
	Name   string   `parser:"@(Word | String)"`
	Params []*param `parser:"@@*"`
}

type param struct {
	Quoted *string `parser:"  @String"`
	Word   *string `parser:"| @Word"`
	Value  *value  `parser:"  ( '=' @@ )?"`
}

type value struct {
	Quoted *string `parser:"  @String"`
	Word   *string `parser:"| @Word"`
}

func (v *value) String() string {
	if v.Quoted != nil {
		return *v.Quoted
	}
	return *v.Word
}

var shortcodeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\.|[^"\\])*"|'(\\.|[^'\\])*'`},
	{Name: "Eq", Pattern: `=`},
	{Name: "Word", Pattern: `[^\s="']+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var shortcodeParser = participle.MustBuild[call](
	participle.Lexer(shortcodeLexer),
	participle.Unquote("String"),
	participle.Elide("Whitespace"),
)

// Parse parses the text between the shortcode delimiters.
func Parse(inner string) (*Shortcode, error) {
	c, err := shortcodeParser.ParseString("", strings.TrimSpace(inner))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrShortcodeParse, "invalid shortcode %q", strings.TrimSpace(inner))
	}

	sc := &Shortcode{Name: c.Name, Options: map[string]string{}}
	for _, p := range c.Params {
		switch {
		case p.Quoted != nil:
			sc.Args = append(sc.Args, *p.Quoted)
		case p.Value != nil:
			sc.Options[*p.Word] = p.Value.String()
		default:
			sc.Args = append(sc.Args, *p.Word)
		}
	}
	return sc, nil
}
