package node

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind

// Kind identifies the shape of a document node.
type Kind int

const (
	KindScalar Kind = iota
	KindMapping
	KindSequence
	KindReference

	// KindTotal is the total number of kinds defined.
	KindTotal = int(iota)
)
