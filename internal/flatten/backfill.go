package flatten

import (
	"fmt"
	"slices"

	"specflat/internal/resolve"
	"specflat/location"
	"specflat/node"
)

// ModelMarker is the key an external model-discovery pass uses to tag
// a schema object with its assigned name.
const ModelMarker = "x-model"

// Catalog lists named model definitions discovered by an external
// pass. Names must come back in a deterministic order.
type Catalog interface {
	Names() []string
	Model(name string) node.Node
}

// MapCatalog is a Catalog over a plain name-to-node map. Names are
// returned sorted.
type MapCatalog map[string]node.Node

func (c MapCatalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func (c MapCatalog) Model(name string) node.Node { return c[name] }

// Backfill pulls catalog models that direct traversal never reached
// into the definitions bucket. Models that exist only as supertypes
// consumed through discriminator logic are never referenced directly,
// yet must survive flattening.
//
// A model counts as already present when some definitions-bucket entry
// carries its name under the model marker key. Missing ones are
// descended under root scope and stored at a location synthesized from
// the origin plus a definitions fragment.
func (e *Engine) Backfill(cat Catalog, origin location.Location, scope resolve.Scope) error {
	tagged := e.taggedModels()

	for _, name := range cat.Names() {
		if _, ok := tagged[name]; ok {
			continue
		}

		loc, err := origin.Join("#/definitions/" + name)
		if err != nil {
			return fmt.Errorf("failed to place model %q: %w", name, err)
		}

		resolved, err := e.Descend(cat.Model(name), scope)
		if err != nil {
			return fmt.Errorf("failed to flatten model %q: %w", name, err)
		}

		e.table[BucketDefinitions][loc] = resolved
	}

	return nil
}

func (e *Engine) taggedModels() map[string]struct{} {
	tagged := make(map[string]struct{})

	for _, entry := range e.table[BucketDefinitions] {
		m, ok := entry.(*node.Mapping)
		if !ok {
			continue
		}

		marker, ok := m.Get(ModelMarker)
		if !ok {
			continue
		}

		if name, ok := node.StringValue(marker); ok {
			tagged[name] = struct{}{}
		}
	}

	return tagged
}
