// Package node provides the document tree model used by the flattener.
//
// A document is parsed once into a closed set of node kinds: Mapping,
// Sequence, Scalar and Reference. All later passes (classification,
// resolution, flattening) dispatch on Kind instead of probing shapes
// at runtime.
//
// Mappings preserve insertion order end to end, both when parsed from
// YAML/JSON input and when serialized back out.
package node
