package specflat

import (
	"errors"
	"fmt"

	"specflat/internal/diagnostic"
	"specflat/internal/flatten"
	"specflat/internal/resolve"
	"specflat/internal/urikey"
	"specflat/location"
	"specflat/node"
)

// ErrNoResolver reports a run configured with neither a resolver nor a
// spec URL to build one from.
var ErrNoResolver = errors.New("a resolver or a spec URL is required")

// Diagnostic codes for the non-fatal findings Flatten can emit.
const (
	CodeSpecURLMissing = "spec-url-missing"
	CodeCatalogMissing = "catalog-missing"
	CodeKeyClash       = flatten.CodeKeyClash
)

// Result is the outcome of a flatten run.
type Result struct {
	// Document is the flattened document, an independent deep copy of
	// the input with buckets attached.
	Document node.Node
	// Warnings are the non-fatal quality findings of the run.
	Warnings []Diagnostic
}

// Flatten resolves every reference reachable from doc and returns a
// self-contained copy with resolved objects relocated into the
// definitions, parameters and responses buckets.
//
// Quality problems (missing spec URL, missing catalog, marshaled-key
// collisions) are reported as warnings on the Result; only
// configuration and encoding failures abort the run, because a partial
// flatten would be misleading.
func Flatten(doc node.Node, opts ...Option) (*Result, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var diags diagnostic.Diagnostics

	var origin *location.Location

	if cfg.specURL == "" {
		diags.AddWarning(CodeSpecURLMissing, "",
			"no spec URL set; marshaled keys will expose internal paths")
	} else {
		loc, err := location.Parse(cfg.specURL)
		if err != nil {
			return nil, fmt.Errorf("invalid spec URL: %w", err)
		}

		origin = &loc
	}

	resolver := cfg.resolver
	if resolver == nil {
		if origin == nil {
			return nil, ErrNoResolver
		}

		var ropts []resolve.ResolverOption
		if cfg.client != nil {
			ropts = append(ropts, resolve.WithHTTPClient(cfg.client))
		}

		resolver = resolve.NewRefResolver(*origin, doc, ropts...)
	}

	if cfg.catalog == nil {
		diags.AddWarning(CodeCatalogMissing, "",
			"no model catalog supplied; unreferenced named models will not survive flattening")
	}

	marshal := cfg.marshal
	if marshal == nil {
		marshal = urikey.Marshal
	}

	bound := func(loc location.Location) (string, error) {
		return marshal(loc, origin)
	}

	engine := flatten.NewEngine(resolver, bound)

	var base location.Location
	if origin != nil {
		base = *origin
	}

	scope := resolve.Scope{Base: base}

	resolved, err := engine.Descend(doc, scope)
	if err != nil {
		return nil, err
	}

	if cfg.catalog != nil {
		if err := engine.Backfill(cfg.catalog, base, scope); err != nil {
			return nil, err
		}
	}

	if err := engine.Collisions(&diags); err != nil {
		return nil, err
	}

	merged, err := engine.Merge(resolved)
	if err != nil {
		return nil, err
	}

	return &Result{Document: merged, Warnings: diags.Warnings}, nil
}
