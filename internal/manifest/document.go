package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabapcia/fieldguard/internal/fieldcheck"
	"github.com/gabapcia/fieldguard/internal/pkg/types"
	"github.com/gabapcia/fieldguard/internal/pkg/validator"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned when a document format is unknown.
	ErrUnsupportedFormat = errors.New("unsupported manifest format")

	// ErrDuplicateField is returned when two entries share the same name.
	ErrDuplicateField = errors.New("duplicate field name")
)

// Format identifies the encoding of a manifest document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the document format from a file path or URL path.
// ".yaml" and ".yml" select YAML; anything else is treated as JSON.
func FormatFromPath(path string) Format {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// entry is the wire form of a single field. A missing or null value (or
// message) means absent.
type entry struct {
	Name    string  `json:"name" yaml:"name" validate:"required"`
	Value   *string `json:"value" yaml:"value"`
	Message *string `json:"message" yaml:"message"`
}

// document is the wire form of a manifest.
type document struct {
	Fields []entry `json:"fields" yaml:"fields" validate:"notnull,dive"`
}

func unmarshal(data []byte, format Format, doc *document) error {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(doc)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Decode parses a manifest document into the field list of a validation pass.
//
// The "fields" key must be present (an empty list is allowed), every entry
// needs a name and names must be unique.
func Decode(data []byte, format Format) ([]fieldcheck.Field, error) {
	var doc document
	if err := unmarshal(data, format, &doc); err != nil {
		return nil, fmt.Errorf("decode %s manifest: %w", format, err)
	}

	if err := validator.Validate(doc); err != nil {
		return nil, err
	}

	seen := types.NewSet[string]()
	fields := make([]fieldcheck.Field, 0, len(doc.Fields))
	for _, e := range doc.Fields {
		if seen.Has(e.Name) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, e.Name)
		}
		seen.Add(e.Name)

		fields = append(fields, fieldcheck.Field{
			Name:    e.Name,
			Value:   e.Value,
			Message: e.Message,
		})
	}

	return fields, nil
}
