package config

import (
	_ "embed"
	goerrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/glossary/pkg/errors"
	"github.com/arthur-debert/glossary/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

// ProjectFileName is the optional per-project configuration file.
const ProjectFileName = "_glossary.toml"

// EnvPrefix prefixes environment overrides, e.g. GLOSSARY_POPUP=none.
const EnvPrefix = "GLOSSARY_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider feeds bytes already in memory to koanf.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, goerrors.New("not implemented")
}

var libraryDefaults = mustLibraryDefaults()

func mustLibraryDefaults() Options {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("embedded defaults.toml is invalid: " + err.Error())
	}
	o, err := ParseOptions(k.All())
	if err != nil {
		panic("embedded defaults.toml is invalid: " + err.Error())
	}
	return o
}

// LibraryDefaults returns the embedded defaults layer.
func LibraryDefaults() Options {
	return libraryDefaults
}

// LoadDefaults builds the defaults layer for a project:
//  1. embedded defaults
//  2. <projectDir>/_glossary.toml on fsys, if present
//  3. GLOSSARY_* environment variables
//  4. overrides (typically command-line flags), if any
func LoadDefaults(fsys afero.Fs, projectDir string, overrides map[string]interface{}) (Options, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	projectFile := filepath.Join(projectDir, ProjectFileName)
	data, err := afero.ReadFile(fsys, projectFile)
	switch {
	case err == nil:
		if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
			return Options{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", projectFile)
		}
		log.Debug().Str("file", projectFile).Msg("Loaded project configuration")
	case !goerrors.Is(err, os.ErrNotExist):
		return Options{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", projectFile)
	}

	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	return ParseOptions(k.All())
}
