package codec

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

func init() {
	Register("yaml", yamlLoader, yamlDumper)
	// .yml files are the same format under another extension.
	Register("yml", yamlLoader, yamlDumper)
}

func yamlLoader(r io.Reader) (map[string]any, error) {
	var m map[string]any
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return m, nil
}

func yamlDumper(data map[string]any, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}
