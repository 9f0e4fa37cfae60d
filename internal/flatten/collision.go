package flatten

import (
	"fmt"
	"slices"

	"specflat/internal/common"
	"specflat/internal/diagnostic"
	"specflat/location"
)

// CodeKeyClash identifies marshaled-key collision warnings.
const CodeKeyClash = "key-clash"

// Collisions re-marshals every location in the resolution table and
// reports each group of distinct locations sharing one marshaled key.
// It never mutates the table; a collision is a quality problem, not a
// correctness one, so the run still completes.
func (e *Engine) Collisions(diags *diagnostic.Diagnostics) error {
	for _, bucket := range bucketOrder {
		entries := e.table[bucket]

		byKey := make(map[string][]location.Location, len(entries))

		for loc := range entries {
			key, err := e.marshal(loc)
			if err != nil {
				return err
			}

			byKey[key] = append(byKey[key], loc)
		}

		if len(byKey) == len(entries) {
			continue
		}

		for _, key := range common.SortedKeys(byKey) {
			locs := byKey[key]
			if len(locs) < 2 {
				continue
			}

			canonical := make([]string, len(locs))
			for i, loc := range locs {
				canonical[i] = loc.String()
			}

			slices.Sort(canonical)

			diags.AddWarning(CodeKeyClash, string(bucket),
				fmt.Sprintf("%d locations clash on key %q", len(locs), key),
				canonical...)
		}
	}

	return nil
}
