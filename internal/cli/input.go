package cli

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/skema"
)

// Input formats accepted by Decode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatRaw  = "raw"
)

// Decode turns raw input into a value for validation. Empty input is absent
// (skema.Undefined); JSON and YAML null become nil; raw input is the trimmed
// text as a string.
func Decode(data []byte, format string) (any, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return skema.Undefined, nil
	}
	switch strings.ToLower(format) {
	case "", FormatJSON:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return v, nil
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return v, nil
	case FormatRaw:
		return string(data), nil
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}
