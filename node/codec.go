package node

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// The YAML and JSON marshalers below exist so mapping key order
// survives serialization; encoding a Mapping through a Go map would
// randomize it.

// MarshalYAML implements yaml.Marshaler.
func (s *Scalar) MarshalYAML() (any, error) { return s.Value, nil }

// MarshalYAML implements yaml.Marshaler.
func (q *Sequence) MarshalYAML() (any, error) {
	if q.Items == nil {
		return []Node{}, nil
	}

	return q.Items, nil
}

// MarshalYAML implements yaml.Marshaler.
func (r *Reference) MarshalYAML() (any, error) {
	return map[string]string{RefKey: r.Target}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (m *Mapping) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, e := range m.entries {
		var key, value yaml.Node

		key.SetString(e.Key)

		err := value.Encode(e.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode value of %q: %w", e.Key, err)
		}

		out.Content = append(out.Content, &key, &value)
	}

	return out, nil
}

// MarshalJSON implements json.Marshaler.
func (s *Scalar) MarshalJSON() ([]byte, error) { return json.Marshal(s.Value) }

// MarshalJSON implements json.Marshaler.
func (q *Sequence) MarshalJSON() ([]byte, error) {
	if q.Items == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(q.Items)
}

// MarshalJSON implements json.Marshaler.
func (r *Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{RefKey: r.Target})
}

// MarshalJSON implements json.Marshaler.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode value of %q: %w", e.Key, err)
		}

		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
