// Package classify infers the structural category of a referenced
// object from its keys alone. It is a best-effort heuristic over
// untyped input, not a validator: anything unrecognized falls through
// to Schema, the only category with no mandatory keys.
package classify

import "specflat/node"

//go:generate go run golang.org/x/tools/cmd/stringer -type=ObjectType

// ObjectType is the structural category of a referenced object.
type ObjectType int

const (
	Schema ObjectType = iota
	PathItem
	Parameter
	Response
)

// extensionPrefix marks patterned extension keys, which never count
// toward shape detection.
const extensionPrefix = "x-"

var httpVerbs = map[string]struct{}{
	"get":     {},
	"put":     {},
	"post":    {},
	"delete":  {},
	"options": {},
	"head":    {},
	"patch":   {},
}

var responseKeys = map[string]struct{}{
	"description": {},
	"schema":      {},
	"headers":     {},
	"examples":    {},
}

// Determine classifies a mapping by shape, in precedence order:
//
//  1. Parameter: both "in" and "name" present. No other object type
//     may carry the two together.
//  2. PathItem: at least one HTTP verb key, and nothing else besides
//     verbs and an optional "parameters" key.
//  3. Response: mandatory "description", and no keys outside
//     description/schema/headers/examples.
//  4. Schema otherwise.
func Determine(m *node.Mapping) ObjectType {
	if m.Has("in") && m.Has("name") {
		return Parameter
	}

	var verbs, rest []string

	for _, key := range m.Keys() {
		if len(key) >= len(extensionPrefix) && key[:len(extensionPrefix)] == extensionPrefix {
			continue
		}

		if _, ok := httpVerbs[key]; ok {
			verbs = append(verbs, key)
		} else {
			rest = append(rest, key)
		}
	}

	if len(verbs) > 0 {
		if len(rest) == 0 || (len(rest) == 1 && rest[0] == "parameters") {
			return PathItem
		}

		return Schema
	}

	if hasDescription, onlyResponseKeys := inspectResponseShape(rest); hasDescription && onlyResponseKeys {
		return Response
	}

	return Schema
}

func inspectResponseShape(keys []string) (hasDescription, onlyResponseKeys bool) {
	onlyResponseKeys = true

	for _, key := range keys {
		if key == "description" {
			hasDescription = true
		}

		if _, ok := responseKeys[key]; !ok {
			onlyResponseKeys = false
		}
	}

	return hasDescription, onlyResponseKeys
}
