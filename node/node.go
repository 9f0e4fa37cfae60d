package node

// Node is a single value in a document tree.
type Node interface {
	Kind() Kind
	// Clone returns a deep copy sharing no mutable state with the receiver.
	Clone() Node
}

// Scalar is a leaf value: string, bool, number or nil.
type Scalar struct {
	Value any
}

// NewScalar wraps a leaf value.
func NewScalar(v any) *Scalar { return &Scalar{Value: v} }

func (s *Scalar) Kind() Kind { return KindScalar }

func (s *Scalar) Clone() Node {
	c := *s
	return &c
}

// Sequence is an ordered list of nodes.
type Sequence struct {
	Items []Node
}

// NewSequence creates a sequence from the given items.
func NewSequence(items ...Node) *Sequence { return &Sequence{Items: items} }

func (q *Sequence) Kind() Kind { return KindSequence }

func (q *Sequence) Clone() Node {
	if q.Items == nil {
		return &Sequence{}
	}

	items := make([]Node, len(q.Items))
	for i, item := range q.Items {
		items[i] = item.Clone()
	}

	return &Sequence{Items: items}
}

// Reference points at another location instead of holding a value.
// Target is the raw reference string as it appeared in the document.
type Reference struct {
	Target string
}

// NewReference creates a reference to the given target.
func NewReference(target string) *Reference { return &Reference{Target: target} }

func (r *Reference) Kind() Kind { return KindReference }

func (r *Reference) Clone() Node {
	c := *r
	return &c
}

// StringValue extracts the string held by a scalar node.
// Returns false for non-scalar nodes and non-string scalars.
func StringValue(n Node) (string, bool) {
	s, ok := n.(*Scalar)
	if !ok {
		return "", false
	}

	v, ok := s.Value.(string)

	return v, ok
}
