// Package definitions reads glossary definition files.
//
// A definitions file is a YAML mapping from term to definition, stored
// without front matter fences:
//
//	# Tools
//	CLI: Command-line interface.
//	API: |
//	  Application Programming Interface.
//
// Files ending in .toml are read as a TOML table of the same shape.
// Keys are matched case-insensitively.
package definitions

import (
	"bytes"
	goerrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/glossary/pkg/errors"
	"github.com/arthur-debert/glossary/pkg/frontmatter"
	"github.com/arthur-debert/glossary/pkg/logging"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Definitions maps terms to raw definition values. Each key is present as
// authored and lower-cased.
type Definitions struct {
	entries  map[string]interface{}
	authored []string
}

// New builds Definitions from a raw mapping. When several authored keys
// fold to the same lower-case key, an exact lower-case key wins, otherwise
// the last one in sorted order.
func New(raw map[string]interface{}) Definitions {
	d := Definitions{entries: make(map[string]interface{}, 2*len(raw))}
	for k := range raw {
		d.authored = append(d.authored, k)
	}
	sort.Strings(d.authored)

	for _, k := range d.authored {
		d.entries[k] = raw[k]
	}
	for _, k := range d.authored {
		lower := strings.ToLower(k)
		if _, exact := raw[lower]; !exact {
			d.entries[lower] = raw[k]
		}
	}
	return d
}

// Lookup returns the stringified definition of term, ignoring case.
func (d Definitions) Lookup(term string) (string, bool) {
	v, ok := d.entries[strings.ToLower(term)]
	if !ok {
		return "", false
	}
	return Stringify(v), true
}

// Terms returns the keys as authored, sorted.
func (d Definitions) Terms() []string {
	return append([]string(nil), d.authored...)
}

// Len returns the number of authored entries.
func (d Definitions) Len() int {
	return len(d.authored)
}

// Stringify renders a definition value as text. Scalars are formatted,
// sequences and mappings are re-encoded as YAML.
func Stringify(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimRight(x, "\n")
	case []interface{}, map[string]interface{}:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(x); err != nil {
			return fmt.Sprint(x)
		}
		return strings.TrimRight(buf.String(), "\n")
	}
	return fmt.Sprint(v)
}

// Reader loads definitions files from a file system. Every Load reads the
// file again so edits are picked up without restarting.
type Reader struct {
	FS afero.Fs
}

// NewReader returns a Reader over fsys.
func NewReader(fsys afero.Fs) *Reader {
	return &Reader{FS: fsys}
}

// Load reads and parses the definitions file at path.
//
// A file that cannot be read is an error. A file that cannot be parsed is
// logged and yields empty Definitions.
func (r *Reader) Load(path string) (Definitions, error) {
	log := logging.GetLogger("definitions")

	content, err := afero.ReadFile(r.FS, path)
	if err != nil {
		code := errors.ErrFileAccess
		if goerrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrFileNotFound
		}
		return Definitions{}, errors.Wrapf(err, code, "cannot read definitions file %s", path).
			WithDetail("path", path)
	}

	raw, err := parse(path, content)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Malformed definitions file, using no definitions")
		return New(nil), nil
	}

	defs := New(raw)
	log.Trace().Str("path", path).Int("entries", defs.Len()).Msg("Loaded definitions")
	return defs, nil
}

func parse(path string, content []byte) (map[string]interface{}, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		raw := map[string]interface{}{}
		if err := toml.Unmarshal(content, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrDefinitionsParse, "invalid TOML")
		}
		return raw, nil
	}

	wrapped := make([]byte, 0, len(content)+10)
	wrapped = append(wrapped, "---\n"...)
	wrapped = append(wrapped, content...)
	wrapped = append(wrapped, "\n---\n"...)

	raw, _, err := frontmatter.Parse(wrapped)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDefinitionsParse, "invalid YAML")
	}
	return raw, nil
}
