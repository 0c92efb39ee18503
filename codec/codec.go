// Package codec turns serialized files into nested mappings and back.
//
// One Loader/Dumper pair exists per format, registered under the format's
// file extension. The built-in formats are json, yaml (and yml), toml, and
// ini. The rest of the module only ever consumes the nested mapping a
// Loader produces; nothing outside this package knows which format the
// bytes were in.
//
// The registry is populated at init time and is not safe for concurrent
// Register calls; register custom formats during startup.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader parses serialized data into a nested mapping.
type Loader func(r io.Reader) (map[string]any, error)

// Dumper writes a nested mapping as serialized data.
type Dumper func(data map[string]any, w io.Writer) error

// UnsupportedFormatError indicates a format with no registered codec.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("format %q is not supported; supported formats are %v", e.Format, Formats())
}

// DumperError indicates data a format cannot represent.
type DumperError struct {
	Format string
	Err    error
}

func (e *DumperError) Error() string {
	return fmt.Sprintf("cannot dump to %s: %v", e.Format, e.Err)
}

func (e *DumperError) Unwrap() error { return e.Err }

// IsUnsupportedFormat reports whether err is or wraps an *UnsupportedFormatError.
func IsUnsupportedFormat(err error) bool {
	var ue *UnsupportedFormatError
	return errors.As(err, &ue)
}

type entry struct {
	load Loader
	dump Dumper
}

var registry = map[string]entry{}

// Register binds a format name (used as the file extension) to a codec.
// Registering an existing format replaces it.
func Register(format string, loader Loader, dumper Dumper) {
	registry[format] = entry{load: loader, dump: dumper}
}

// LoaderFor returns the loader registered for format.
func LoaderFor(format string) (Loader, error) {
	e, ok := registry[format]
	if !ok {
		return nil, &UnsupportedFormatError{Format: format}
	}
	return e.load, nil
}

// DumperFor returns the dumper registered for format.
func DumperFor(format string) (Dumper, error) {
	e, ok := registry[format]
	if !ok {
		return nil, &UnsupportedFormatError{Format: format}
	}
	return e.dump, nil
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// FormatOf returns the format implied by a file path's extension.
func FormatOf(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// LoadFile parses the file at path with the loader its extension implies.
func LoadFile(path string) (map[string]any, error) {
	load, err := LoaderFor(FormatOf(path))
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return data, nil
}

// DumpFile writes data to path with the dumper its extension implies.
func DumpFile(data map[string]any, path string) error {
	dump, err := DumperFor(FormatOf(path))
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dump(data, f)
}

// Convert loads the file at srcPath and returns it serialized in dstFormat.
func Convert(srcPath, dstFormat string) ([]byte, error) {
	dump, err := DumperFor(dstFormat)
	if err != nil {
		return nil, err
	}
	data, err := LoadFile(srcPath)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := dump(data, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
