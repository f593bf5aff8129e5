package skema

import (
	"maps"

	js "github.com/reoring/skema/jsonschema"
)

// Meta keys that JSONSchema maps onto standard keywords instead of x-meta.
const (
	MetaDescription = "description"
	MetaFormat      = "format"
)

// Description is a serializable summary of a node's configuration.
type Description struct {
	Type        string            `json:"type" yaml:"type"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Requirement string            `json:"requirement" yaml:"requirement"`
	Nullable    bool              `json:"nullable" yaml:"nullable"`
	HasDefault  bool              `json:"hasDefault" yaml:"hasDefault"`
	Default     any               `json:"default,omitempty" yaml:"default,omitempty"`
	Strict      bool              `json:"strict,omitempty" yaml:"strict,omitempty"`
	Transforms  int               `json:"transforms" yaml:"transforms"`
	Meta        map[string]any    `json:"meta,omitempty" yaml:"meta,omitempty"`
	Tests       []TestDescription `json:"tests" yaml:"tests"`
}

// TestDescription summarizes one registered test.
type TestDescription struct {
	Name      string `json:"name" yaml:"name"`
	Exclusive bool   `json:"exclusive,omitempty" yaml:"exclusive,omitempty"`
	Params    Params `json:"params,omitempty" yaml:"params,omitempty"`
}

// Describe returns a summary of n. Default is only filled for literal
// defaults; thunks are not evaluated.
func (n *Node[T]) Describe() Description {
	d := Description{
		Type:        n.kind.Name,
		Label:       n.label,
		Requirement: n.presence.requirement.String(),
		Nullable:    n.presence.nullable,
		HasDefault:  n.presence.hasDefault,
		Strict:      n.strict,
		Transforms:  len(n.transforms),
		Meta:        maps.Clone(n.meta),
		Tests:       make([]TestDescription, 0, len(n.tests)),
	}
	if n.presence.hasDefault && n.presence.thunk == nil {
		d.Default = n.presence.def
	}
	for _, t := range n.tests {
		d.Tests = append(d.Tests, TestDescription{Name: t.Name, Exclusive: t.Exclusive, Params: t.Params.clone()})
	}
	return d
}

// JSONSchema projects n onto a JSON Schema document.
func (n *Node[T]) JSONSchema() (*js.Schema, error) {
	d := n.Describe()
	s := &js.Schema{
		Type:     n.kind.JSONType,
		Title:    d.Label,
		Nullable: d.Nullable,
	}
	meta := d.Meta
	if v, ok := meta[MetaDescription].(string); ok {
		s.Description = v
		delete(meta, MetaDescription)
	}
	if v, ok := meta[MetaFormat].(string); ok {
		s.Format = v
		delete(meta, MetaFormat)
	}
	if len(meta) > 0 {
		s.Extensions = meta
	}
	if d.Default != nil {
		if _, ok := n.kind.Check(d.Default); ok {
			s.Default = d.Default
		}
	}
	for _, t := range d.Tests {
		switch t.Name {
		case CodeOneOf:
			vs, _ := t.Params["values"].([]any)
			s.Enum = vs
		case CodeNotOneOf:
			vs, _ := t.Params["values"].([]any)
			s.Not = &js.Schema{Enum: vs}
		default:
			if n.kind.Project != nil {
				n.kind.Project(s, t)
			}
		}
	}
	return s, nil
}
