// Package common holds small generic helpers shared across the module.
package common

import (
	"cmp"
	"slices"
)

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// SortedKeysBy returns the keys of m ordered by the projection fn.
// Needed when the key type itself is not ordered.
func SortedKeysBy[M ~map[K]V, K comparable, V any, P cmp.Ordered](m M, fn func(K) P) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(a, b K) int {
		return cmp.Compare(fn(a), fn(b))
	})

	return keys
}
