package codec

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-ini/ini"
)

func init() {
	Register("ini", iniLoader, iniDumper)
}

// iniLoader parses an INI document into a two-level mapping: section name
// to key/value pairs. All leaf values are strings; INI carries no type
// information.
func iniLoader(r io.Reader) (map[string]any, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := ini.Load(src)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any)
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection && len(sec.Keys()) == 0 {
			continue
		}
		pairs := make(map[string]any, len(sec.Keys()))
		for k, v := range sec.KeysHash() {
			pairs[k] = v
		}
		out[sec.Name()] = pairs
	}
	return out, nil
}

// iniDumper writes a mapping as INI. The format only represents two levels
// (sections of scalar keys); anything deeper fails with *DumperError.
func iniDumper(data map[string]any, w io.Writer) error {
	f := ini.Empty()

	sections := make([]string, 0, len(data))
	for name := range data {
		sections = append(sections, name)
	}
	sort.Strings(sections)

	for _, name := range sections {
		pairs, ok := data[name].(map[string]any)
		if !ok {
			return &DumperError{
				Format: "ini",
				Err:    fmt.Errorf("top-level value for %q must be a mapping of keys to scalars", name),
			}
		}
		sec, err := f.NewSection(name)
		if err != nil {
			return &DumperError{Format: "ini", Err: err}
		}

		keys := make([]string, 0, len(pairs))
		for k := range pairs {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			switch pairs[k].(type) {
			case map[string]any, []any:
				return &DumperError{
					Format: "ini",
					Err:    fmt.Errorf("section %q key %q: nested values cannot be represented", name, k),
				}
			}
			if _, err := sec.NewKey(k, fmt.Sprint(pairs[k])); err != nil {
				return &DumperError{Format: "ini", Err: err}
			}
		}
	}

	_, err := f.WriteTo(w)
	return err
}
