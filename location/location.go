// Package location provides absolute document locations: URI-like
// values compared structurally, component by component, rather than by
// raw string.
package location

import (
	"fmt"
	"net/url"
	"strings"
)

// Location is a parsed absolute location. It is comparable, so two
// locations are equal exactly when all their components are equal, and
// a Location can be used directly as a map key.
//
// Fragment is stored without its leading slash, so "#/definitions/Pet"
// and "#definitions/Pet" identify the same location.
type Location struct {
	Scheme   string
	Host     string
	Path     string
	Query    string
	Fragment string
}

// Parse parses a raw URI string into a Location.
func Parse(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("failed to parse location %q: %w", raw, err)
	}

	return fromURL(u), nil
}

func fromURL(u *url.URL) Location {
	return Location{
		Scheme:   u.Scheme,
		Host:     u.Host,
		Path:     u.Path,
		Query:    u.RawQuery,
		Fragment: strings.TrimPrefix(u.Fragment, "/"),
	}
}

// URL converts the location back to a net/url value.
func (l Location) URL() *url.URL {
	return &url.URL{
		Scheme:   l.Scheme,
		Host:     l.Host,
		Path:     l.Path,
		RawQuery: l.Query,
		Fragment: l.Fragment,
	}
}

// String returns the canonical serialized form.
func (l Location) String() string { return l.URL().String() }

// IsZero reports whether every component is empty.
func (l Location) IsZero() bool { return l == Location{} }

// Join resolves ref against l per RFC 3986 reference resolution.
func (l Location) Join(ref string) (Location, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return Location{}, fmt.Errorf("failed to parse reference %q: %w", ref, err)
	}

	return fromURL(l.URL().ResolveReference(r)), nil
}

// WithoutFragment returns the location of the containing document.
func (l Location) WithoutFragment() Location {
	l.Fragment = ""
	return l
}
