package node

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// RefKey is the mapping key that turns a mapping into a reference.
const RefKey = "$ref"

// Parse decodes a YAML or JSON document into a node tree. JSON input
// works because JSON is a subset of YAML. Mapping key order is the
// order of appearance in the input.
//
// A mapping holding a string under "$ref" is parsed as a Reference;
// any sibling keys are dropped, matching how references behave during
// flattening (the pointer replaces the whole mapping).
func Parse(data []byte) (Node, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty document")
	}

	return fromYAML(doc.Content[0])
}

func fromYAML(n *yaml.Node) (Node, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromYAML(n.Alias)

	case yaml.ScalarNode:
		var v any

		err := n.Decode(&v)
		if err != nil {
			return nil, fmt.Errorf("invalid scalar at line %d: %w", n.Line, err)
		}

		return &Scalar{Value: v}, nil

	case yaml.SequenceNode:
		items := make([]Node, 0, len(n.Content))

		for _, c := range n.Content {
			item, err := fromYAML(c)
			if err != nil {
				return nil, err
			}

			items = append(items, item)
		}

		return &Sequence{Items: items}, nil

	case yaml.MappingNode:
		m := NewMapping()

		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string

			err := n.Content[i].Decode(&key)
			if err != nil {
				return nil, fmt.Errorf("invalid mapping key at line %d: %w", n.Content[i].Line, err)
			}

			value, err := fromYAML(n.Content[i+1])
			if err != nil {
				return nil, err
			}

			m.Set(key, value)
		}

		if ref, ok := refTarget(m); ok {
			return &Reference{Target: ref}, nil
		}

		return m, nil

	default:
		return nil, fmt.Errorf("unsupported YAML node kind %v at line %d", n.Kind, n.Line)
	}
}

// refTarget returns the reference target if m is reference-shaped.
func refTarget(m *Mapping) (string, bool) {
	v, ok := m.Get(RefKey)
	if !ok {
		return "", false
	}

	return StringValue(v)
}
