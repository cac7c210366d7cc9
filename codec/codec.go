// Package codec decodes raw command specification documents from YAML or
// JSON while preserving declaration order, and serializes documents back
// to JSON for storage.
package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwantia/cmdspec/data"
)

type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	default:
		return "yaml"
	}
}

// Detect derives the document format from a file extension.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("codec: unsupported file extension '%s'", filepath.Ext(path))
	}
}

// Decode reads one raw specification document in the given format.
func Decode(r io.Reader, format Format) (*data.Document, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(r)
	default:
		return DecodeYAML(r)
	}
}

// DecodeFile decodes a specification file, picking the format by extension.
func DecodeFile(path string) (*data.Document, error) {
	format, err := Detect(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Decode(file, format)
}
