package jsonschema

import (
	"bytes"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	// Core
	Type        string         `json:"type,omitempty" yaml:"type,omitempty"`
	Title       string         `json:"title,omitempty" yaml:"title,omitempty"`
	Format      string         `json:"format,omitempty" yaml:"format,omitempty"`
	Default     any            `json:"default,omitempty" yaml:"default,omitempty"`
	Nullable    bool           `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Const       any            `json:"const,omitempty" yaml:"const,omitempty"`
	Enum        []any          `json:"enum,omitempty" yaml:"enum,omitempty"`
	Not         *Schema        `json:"not,omitempty" yaml:"not,omitempty"`
	Extensions  map[string]any `json:"x-meta,omitempty" yaml:"x-meta,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Number
	Minimum          *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty" yaml:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty" yaml:"exclusiveMaximum,omitempty"`
}

// JSON renders the schema as indented JSON.
func (s *Schema) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// YAML renders the schema as YAML.
func (s *Schema) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Ptr returns a pointer to v, for the optional numeric keywords.
func Ptr[T any](v T) *T { return &v }
