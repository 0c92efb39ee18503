package codec

import (
	"io"

	"github.com/pelletier/go-toml/v2"
)

func init() {
	Register("toml", tomlLoader, tomlDumper)
}

func tomlLoader(r io.Reader) (map[string]any, error) {
	var m map[string]any
	if err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

func tomlDumper(data map[string]any, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(data); err != nil {
		return &DumperError{Format: "toml", Err: err}
	}
	return nil
}
