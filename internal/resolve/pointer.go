package resolve

import (
	"fmt"
	"strconv"
	"strings"

	"specflat/node"
)

// evalPointer walks a JSON-pointer fragment (without its leading
// slash) through a node tree. An empty fragment addresses the whole
// document.
func evalPointer(doc node.Node, fragment string) (node.Node, error) {
	if fragment == "" {
		return doc, nil
	}

	current := doc

	for _, raw := range strings.Split(fragment, "/") {
		segment := decodeSegment(raw)

		switch v := current.(type) {
		case *node.Mapping:
			child, ok := v.Get(segment)
			if !ok {
				return nil, fmt.Errorf("key %q not found", segment)
			}

			current = child

		case *node.Sequence:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(v.Items) {
				return nil, fmt.Errorf("index %q out of range", segment)
			}

			current = v.Items[i]

		default:
			return nil, fmt.Errorf("cannot index %s node with %q", current.Kind(), segment)
		}
	}

	return current, nil
}

// decodeSegment undoes JSON-pointer escaping: ~1 before ~0, so "~01"
// decodes to "~1" and not "/".
func decodeSegment(s string) string {
	s = strings.ReplaceAll(s, "~1", "/")
	return strings.ReplaceAll(s, "~0", "~")
}
