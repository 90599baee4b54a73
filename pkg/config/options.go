package config

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/glossary/pkg/errors"
)

// Option keys as they appear in shortcodes, metadata and config files.
const (
	KeyPath       = "path"
	KeyPopup      = "popup"
	KeyShow       = "show"
	KeyAddToTable = "add_to_table"
)

// PopupMode selects the interactive presentation of a term.
type PopupMode int

const (
	// PopupClick shows the definition in a popup when the term is activated.
	PopupClick PopupMode = iota
	// PopupNone renders the term as plain text.
	PopupNone
)

func (p PopupMode) String() string {
	if p == PopupNone {
		return "none"
	}
	return "click"
}

// ParsePopupMode maps "none" to PopupNone and every other value to PopupClick.
func ParsePopupMode(s string) PopupMode {
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return PopupNone
	}
	return PopupClick
}

// Options is one configuration layer. Nil fields leave lower layers alone.
type Options struct {
	Path       *string
	Popup      *PopupMode
	Show       *bool
	AddToTable *bool
}

// Resolved is the fully merged configuration for one occurrence.
type Resolved struct {
	Path       string
	Popup      PopupMode
	Show       bool
	AddToTable bool
}

// Merge applies layers in order; a later layer wins for every field it sets.
// Callers pass library defaults first: Merge(defaults, doc, call).
func Merge(layers ...Options) Resolved {
	var r Resolved
	for _, l := range layers {
		if l.Path != nil {
			r.Path = *l.Path
		}
		if l.Popup != nil {
			r.Popup = *l.Popup
		}
		if l.Show != nil {
			r.Show = *l.Show
		}
		if l.AddToTable != nil {
			r.AddToTable = *l.AddToTable
		}
	}
	return r
}

// ParseBool accepts booleans and the usual textual spellings.
func ParseBool(v interface{}) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		}
	case int:
		return b != 0, nil
	case int64:
		return b != 0, nil
	}
	return false, fmt.Errorf("%v is not a boolean", v)
}

// ParseOptions reads a layer from a loosely typed map such as shortcode
// options or a metadata block. Unknown keys are ignored.
func ParseOptions(m map[string]interface{}) (Options, error) {
	var o Options
	if v, ok := m[KeyPath]; ok && v != nil {
		s := fmt.Sprint(v)
		o.Path = &s
	}
	if v, ok := m[KeyPopup]; ok && v != nil {
		p := ParsePopupMode(fmt.Sprint(v))
		o.Popup = &p
	}
	for key, dst := range map[string]**bool{KeyShow: &o.Show, KeyAddToTable: &o.AddToTable} {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		b, err := ParseBool(v)
		if err != nil {
			return Options{}, errors.Wrapf(err, errors.ErrConfigValid, "option %q", key)
		}
		*dst = &b
	}
	return o, nil
}

// StringMap widens shortcode options to the map ParseOptions expects.
func StringMap(m map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
