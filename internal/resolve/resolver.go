// Package resolve provides the reference-resolution capability used by
// the flatten engine: turning a raw reference string into the absolute
// location it points at and the node stored there.
//
// Resolution scope is threaded through calls as a value instead of
// being pushed and popped on shared resolver state, so a resolver can
// be reentered safely from recursive descent.
package resolve

import (
	"specflat/location"
	"specflat/node"
)

// Scope carries the resolution context a reference is evaluated in.
type Scope struct {
	// Base is the location of the document the reference appears in.
	Base location.Location
}

// Resolution is the outcome of resolving one reference.
type Resolution struct {
	// Location is the absolute location the reference points at.
	Location location.Location
	// Value is the node stored at Location.
	Value node.Node
	// Scope is the scope for descending into Value. It differs from
	// the caller's scope when the reference crossed into another
	// document.
	Scope Scope
}

// Resolver resolves reference strings into locations and values.
type Resolver interface {
	Resolve(ref string, scope Scope) (Resolution, error)
}
