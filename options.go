package specflat

import "net/http"

// Option customizes a flatten run.
type Option func(*config)

type config struct {
	specURL  string
	resolver Resolver
	marshal  MarshalFunc
	catalog  Catalog
	client   *http.Client
}

// WithSpecURL sets the canonical location of the root document. It is
// used to relativize local file paths in marshaled keys, hiding the
// filesystem layout, and to build the default resolver.
func WithSpecURL(u string) Option {
	return func(c *config) {
		c.specURL = u
	}
}

// WithResolver injects a custom reference resolver. Without one, a
// default resolver is built from the spec URL; if neither is supplied
// Flatten fails with ErrNoResolver.
func WithResolver(r Resolver) Option {
	return func(c *config) {
		c.resolver = r
	}
}

// WithMarshalURI overrides the default location-to-key function.
func WithMarshalURI(fn MarshalFunc) Option {
	return func(c *config) {
		c.marshal = fn
	}
}

// WithCatalog supplies the named-model catalog used to backfill
// definitions that direct traversal never reaches.
func WithCatalog(cat Catalog) Option {
	return func(c *config) {
		c.catalog = cat
	}
}

// WithHTTPClient sets the client the default resolver fetches remote
// documents with. Ignored when WithResolver is used.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.client = client
	}
}
