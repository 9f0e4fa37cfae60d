package flatten

import (
	"errors"

	"specflat/internal/common"
	"specflat/location"
	"specflat/node"
)

// ErrRootNotMapping reports a root document that resolved references
// into buckets but has no top level to attach them to.
var ErrRootNotMapping = errors.New("root document is not a mapping, cannot attach buckets")

// Merge attaches the accumulated buckets to the resolved root
// document and returns it. Bucket entries are added to the same-named
// top-level section, next to whatever the section already holds, so no
// path of the input disappears from the output; a missing section is
// created when its bucket is non-empty.
//
// Output is deterministic: bucket entries are appended in ascending
// key order, and when two locations collide on one marshaled key the
// location whose canonical string sorts first supplies the surviving
// value.
func (e *Engine) Merge(root node.Node) (node.Node, error) {
	m, ok := root.(*node.Mapping)
	if !ok {
		if e.tableEmpty() {
			return root, nil
		}

		return nil, ErrRootNotMapping
	}

	for _, bucket := range bucketOrder {
		entries := e.table[bucket]
		if len(entries) == 0 {
			continue
		}

		section := bucketSection(m, bucket)

		seen := make(map[string]bool, len(entries))

		for _, loc := range sortedLocations(entries) {
			key, err := e.marshal(loc)
			if err != nil {
				return nil, err
			}

			if seen[key] {
				// Key collision: the lexicographically first location
				// already won. Reported by Collisions, not fatal.
				continue
			}

			seen[key] = true
			section.Set(key, entries[loc])
		}
	}

	return m, nil
}

// bucketSection returns the mapping stored under bucket in root,
// installing an empty one when the section is missing or not a
// mapping.
func bucketSection(root *node.Mapping, bucket Bucket) *node.Mapping {
	if existing, ok := root.Get(string(bucket)); ok {
		if section, ok := existing.(*node.Mapping); ok {
			return section
		}
	}

	section := node.NewMapping()
	root.Set(string(bucket), section)

	return section
}

func (e *Engine) tableEmpty() bool {
	for _, entries := range e.table {
		if len(entries) > 0 {
			return false
		}
	}

	return true
}

func sortedLocations(entries map[location.Location]node.Node) []location.Location {
	return common.SortedKeysBy(entries, location.Location.String)
}
