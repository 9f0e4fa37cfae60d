// Package flatten implements the reference-flattening engine: a
// recursive descent that resolves every reference exactly once,
// relocates the resolved objects into typed buckets keyed by marshaled
// location, and rewrites each reference into a pointer at the bucket
// entry.
package flatten

import (
	"fmt"

	"specflat/internal/classify"
	"specflat/internal/resolve"
	"specflat/location"
	"specflat/node"
)

// Bucket names one of the typed top-level collections flattened
// objects are relocated into.
type Bucket string

const (
	BucketDefinitions Bucket = "definitions"
	BucketParameters  Bucket = "parameters"
	BucketResponses   Bucket = "responses"
)

// bucketOrder fixes the order buckets are merged into the root.
var bucketOrder = []Bucket{BucketDefinitions, BucketParameters, BucketResponses}

func bucketFor(t classify.ObjectType) Bucket {
	switch t {
	case classify.Parameter:
		return BucketParameters
	case classify.Response:
		return BucketResponses
	default:
		return BucketDefinitions
	}
}

// MarshalFunc turns an absolute location into a document-key-safe
// string. Implementations must never emit '/' or '#'.
type MarshalFunc func(target location.Location, origin *location.Location) (string, error)

// Engine holds the per-run state of one flatten invocation. The
// resolution table is confined to the engine; concurrent flatten runs
// need one engine each.
type Engine struct {
	resolver resolve.Resolver
	marshal  func(location.Location) (string, error)

	// table maps each bucket to the locations resolved into it. A nil
	// node is the in-progress placeholder: it is set before recursing
	// into a resolved value so that a reference cycle finds the entry
	// and produces a pointer instead of recursing forever.
	table map[Bucket]map[location.Location]node.Node
}

// NewEngine creates an engine with an empty resolution table. The
// marshal function is already bound to the run's origin.
func NewEngine(resolver resolve.Resolver, marshal func(location.Location) (string, error)) *Engine {
	table := make(map[Bucket]map[location.Location]node.Node, len(bucketOrder))
	for _, b := range bucketOrder {
		table[b] = make(map[location.Location]node.Node)
	}

	return &Engine{
		resolver: resolver,
		marshal:  marshal,
		table:    table,
	}
}

// Descend returns a copy of n in which every reference has been either
// inlined (path items) or rewritten into a bucket pointer, with the
// resolved target stored in the engine's table.
//
// A location is resolved at most once: later references to it, and
// references reached while it is still being resolved, reuse the table
// entry and emit the same pointer.
func (e *Engine) Descend(n node.Node, scope resolve.Scope) (node.Node, error) {
	switch v := n.(type) {
	case *node.Reference:
		return e.descendReference(v, scope)

	case *node.Mapping:
		out := node.NewMapping()

		for _, entry := range v.Entries() {
			child, err := e.Descend(entry.Value, scope)
			if err != nil {
				return nil, err
			}

			out.Set(entry.Key, child)
		}

		return out, nil

	case *node.Sequence:
		items := make([]node.Node, 0, len(v.Items))

		for _, item := range v.Items {
			child, err := e.Descend(item, scope)
			if err != nil {
				return nil, err
			}

			items = append(items, child)
		}

		return &node.Sequence{Items: items}, nil

	default:
		return n.Clone(), nil
	}
}

func (e *Engine) descendReference(ref *node.Reference, scope resolve.Scope) (node.Node, error) {
	res, err := e.resolver.Resolve(ref.Target, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", ref.Target, err)
	}

	// Path items are inlined in place, never bucketed.
	if objectTypeOf(res.Value) == classify.PathItem {
		return e.Descend(res.Value, res.Scope)
	}

	bucket := bucketFor(objectTypeOf(res.Value))
	entries := e.table[bucket]

	if _, seen := entries[res.Location]; !seen {
		// Placeholder first: a cycle reaching this location again must
		// stop here and link forward to the bucket entry.
		entries[res.Location] = nil

		resolved, err := e.Descend(res.Value, res.Scope)
		if err != nil {
			return nil, err
		}

		entries[res.Location] = resolved
	}

	return e.pointerTo(bucket, res.Location)
}

func (e *Engine) pointerTo(bucket Bucket, loc location.Location) (node.Node, error) {
	key, err := e.marshal(loc)
	if err != nil {
		return nil, err
	}

	return node.NewReference("#/" + string(bucket) + "/" + key), nil
}

// objectTypeOf classifies a resolved value. Non-mapping values have no
// discriminating keys to inspect and land in the schema bucket.
func objectTypeOf(n node.Node) classify.ObjectType {
	m, ok := n.(*node.Mapping)
	if !ok {
		return classify.Schema
	}

	return classify.Determine(m)
}
