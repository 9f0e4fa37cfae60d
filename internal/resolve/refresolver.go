package resolve

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"specflat/internal/urikey"
	"specflat/location"
	"specflat/node"
)

// Handler fetches the raw bytes of the document at loc. Handlers are
// selected by URI scheme.
type Handler func(loc location.Location) ([]byte, error)

// RefResolver is the default Resolver. It caches every fetched
// document by its fragment-less location, so each external document is
// fetched and parsed at most once per resolver.
//
// A RefResolver is not safe for concurrent use; concurrent flatten
// runs need one resolver each.
type RefResolver struct {
	handlers map[string]Handler
	docs     map[location.Location]node.Node
}

// ResolverOption customizes a RefResolver.
type ResolverOption func(*RefResolver)

// WithHandler registers a fetch handler for the given URI scheme,
// replacing the default one if present.
func WithHandler(scheme string, h Handler) ResolverOption {
	return func(r *RefResolver) {
		r.handlers[scheme] = h
	}
}

// WithHTTPClient replaces the http.Client behind the http and https
// handlers.
func WithHTTPClient(client *http.Client) ResolverOption {
	return func(r *RefResolver) {
		r.handlers["http"] = httpHandler(client)
		r.handlers["https"] = httpHandler(client)
	}
}

// NewRefResolver builds a resolver rooted at base: references resolved
// under root scope are joined against base, and root is pre-registered
// as the document living at base, so fragment-only references never
// trigger a fetch.
func NewRefResolver(base location.Location, root node.Node, opts ...ResolverOption) *RefResolver {
	r := &RefResolver{
		handlers: map[string]Handler{
			urikey.SchemeFile: fileHandler,
			"http":            httpHandler(http.DefaultClient),
			"https":           httpHandler(http.DefaultClient),
		},
		docs: map[location.Location]node.Node{
			base.WithoutFragment(): root,
		},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve implements Resolver.
func (r *RefResolver) Resolve(ref string, scope Scope) (Resolution, error) {
	abs, err := scope.Base.Join(ref)
	if err != nil {
		return Resolution{}, err
	}

	docLoc := abs.WithoutFragment()

	doc, ok := r.docs[docLoc]
	if !ok {
		doc, err = r.fetch(docLoc)
		if err != nil {
			return Resolution{}, err
		}

		r.docs[docLoc] = doc
	}

	value, err := evalPointer(doc, abs.Fragment)
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to resolve %q against %s: %w", ref, docLoc, err)
	}

	return Resolution{
		Location: abs,
		Value:    value,
		Scope:    Scope{Base: docLoc},
	}, nil
}

func (r *RefResolver) fetch(docLoc location.Location) (node.Node, error) {
	scheme := docLoc.Scheme
	if scheme == "" {
		scheme = urikey.SchemeFile
	}

	handler, ok := r.handlers[scheme]
	if !ok {
		return nil, fmt.Errorf("no handler for scheme %q (document %s)", scheme, docLoc)
	}

	data, err := handler(docLoc)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document %s: %w", docLoc, err)
	}

	doc, err := node.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", docLoc, err)
	}

	return doc, nil
}

func fileHandler(loc location.Location) ([]byte, error) {
	return os.ReadFile(loc.Path)
}

func httpHandler(client *http.Client) Handler {
	return func(loc location.Location) ([]byte, error) {
		resp, err := client.Get(loc.String())
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}

		return io.ReadAll(resp.Body)
	}
}
