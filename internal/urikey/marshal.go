// Package urikey turns absolute locations into strings that are safe
// to use as document keys. Many JSON parsers and reference resolvers
// treat '/' as an object-nesting indicator and '#' as a fragment
// introducer, so both are rewritten.
package urikey

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"specflat/location"
)

// ErrInvalidURI reports a location that cannot be safely encoded as a
// document key.
var ErrInvalidURI = errors.New("invalid marshal target")

const (
	// SchemeFile is the local-file scheme assumed for relative paths.
	SchemeFile = "file"
	// SchemeMaskedFile marks local-file locations that were rewritten
	// relative to the origin document, hiding absolute filesystem
	// layout. Masked locations serialize without a scheme prefix.
	SchemeMaskedFile = "lfile"
)

// replacements is applied in order; each pattern is substituted over
// the whole string before the next one runs.
var replacements = []struct {
	old string
	new string
}{
	{"/", ".."}, // api_docs/swagger.json -> api_docs..swagger.json
	{"#", "|"},  // swagger.json#definitions -> swagger.json|definitions
}

// Marshal serializes target into a document-key-safe string. When
// origin is non-nil, local-file targets are masked: their scheme is
// replaced by SchemeMaskedFile and their path is rewritten relative to
// origin's directory.
//
// The output never contains '/' or '#'. Distinct targets should, but
// are not guaranteed to, produce distinct keys; collisions are
// detected downstream rather than prevented here.
func Marshal(target location.Location, origin *location.Location) (string, error) {
	if target.Scheme == "" {
		// Relative-path artifact; should not happen for resolved refs.
		target.Scheme = SchemeFile
	}

	marshaled := serialize(target)
	if marshaled == "" || !allowedScheme(target.Scheme) {
		return "", fmt.Errorf("%w: %q", ErrInvalidURI, serialize(target))
	}

	if origin != nil && target.Scheme == SchemeFile {
		target.Scheme = SchemeMaskedFile
		target.Host = ""
		target.Path = relativePath(target.Path, path.Dir(origin.Path))
		marshaled = serialize(target)
	}

	for _, r := range replacements {
		marshaled = strings.ReplaceAll(marshaled, r.old, r.new)
	}

	return marshaled, nil
}

func allowedScheme(scheme string) bool {
	switch scheme {
	case SchemeFile, "http", "https":
		return true
	default:
		return false
	}
}

// serialize is like Location.String except that masked locations are
// written as bare relative references: "a.json#definitions/Pet"
// instead of "lfile:a.json#definitions/Pet". The masked form cannot be
// confused with an unmasked one, which always carries a scheme.
func serialize(l location.Location) string {
	if l.Scheme != SchemeMaskedFile {
		return l.String()
	}

	var b strings.Builder

	b.WriteString(l.Path)

	if l.Query != "" {
		b.WriteByte('?')
		b.WriteString(l.Query)
	}

	if l.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(l.Fragment)
	}

	return b.String()
}

// relativePath computes target relative to base over slash-separated
// URL paths. filepath.Rel is not used because its separator is
// OS-dependent while URL paths always use '/'.
func relativePath(target, base string) string {
	t := splitPath(path.Clean(target))
	b := splitPath(path.Clean(base))

	common := 0
	for common < len(t) && common < len(b) && t[common] == b[common] {
		common++
	}

	var segments []string
	for range b[common:] {
		segments = append(segments, "..")
	}

	segments = append(segments, t[common:]...)

	if len(segments) == 0 {
		return "."
	}

	return strings.Join(segments, "/")
}

func splitPath(p string) []string {
	var out []string

	for _, seg := range strings.Split(p, "/") {
		if seg != "" && seg != "." {
			out = append(out, seg)
		}
	}

	return out
}
