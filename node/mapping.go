package node

// Entry is a single key-value pair of a mapping.
type Entry struct {
	Key   string
	Value Node
}

// Mapping is an ordered key-to-node collection. Keys keep their
// insertion order; setting an existing key replaces the value in place.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

// NewMapping creates an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{index: make(map[string]int)}
}

func (m *Mapping) Kind() Kind { return KindMapping }

// Len returns the number of entries.
func (m *Mapping) Len() int { return len(m.entries) }

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Node, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}

	return m.entries[i].Value, true
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// Set stores value under key, appending the key if it is new.
func (m *Mapping) Set(key string, value Node) {
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}

	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

// Delete removes key, preserving the order of the remaining entries.
func (m *Mapping) Delete(key string) {
	i, ok := m.index[key]
	if !ok {
		return
	}

	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, key)

	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].Key] = j
	}
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}

	return keys
}

// Entries returns the key-value pairs in insertion order.
// The returned slice must not be mutated.
func (m *Mapping) Entries() []Entry { return m.entries }

func (m *Mapping) Clone() Node {
	out := NewMapping()
	for _, e := range m.entries {
		out.Set(e.Key, e.Value.Clone())
	}

	return out
}
