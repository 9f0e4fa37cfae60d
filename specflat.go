// Package specflat flattens documents that cross-reference themselves
// and other documents into a single self-contained one.
//
// Every reference is resolved exactly once; resolved objects are
// deduplicated and relocated into three typed top-level buckets
// (definitions, parameters, responses) under collision-resistant keys
// derived from each reference's absolute location, while path-item
// objects are inlined in place. The result is an independent deep
// copy; the input document is never touched.
//
//	doc, _ := node.Parse(raw)
//	result, err := specflat.Flatten(doc,
//		specflat.WithSpecURL("file:///specs/petstore.json"),
//	)
package specflat

import (
	"specflat/internal/diagnostic"
	"specflat/internal/flatten"
	"specflat/internal/resolve"
)

// Resolver resolves reference strings into locations and values.
type Resolver = resolve.Resolver

// Scope carries the resolution context a reference is evaluated in.
type Scope = resolve.Scope

// Resolution is the outcome of resolving one reference.
type Resolution = resolve.Resolution

// Handler fetches the raw bytes of an external document, selected by
// URI scheme.
type Handler = resolve.Handler

// MarshalFunc turns an absolute location into a document-key-safe
// string. Custom implementations must never emit '/' or '#'.
type MarshalFunc = flatten.MarshalFunc

// Catalog lists named model definitions discovered by an external
// pass, so they survive flattening even when never referenced.
type Catalog = flatten.Catalog

// MapCatalog is a Catalog over a plain name-to-node map.
type MapCatalog = flatten.MapCatalog

// Diagnostic is a single non-fatal quality finding.
type Diagnostic = diagnostic.Diagnostic
