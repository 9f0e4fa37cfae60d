package urikey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specflat/internal/urikey"
	"specflat/location"
)

func mustParse(t *testing.T, raw string) location.Location {
	t.Helper()

	l, err := location.Parse(raw)
	require.NoError(t, err)

	return l
}

func TestMarshal_MaskedRelativeToOrigin(t *testing.T) {
	origin := mustParse(t, "file:///specs/a.json")
	target := mustParse(t, "file:///specs/a.json#/definitions/Pet")

	key, err := urikey.Marshal(target, &origin)
	require.NoError(t, err)
	assert.Equal(t, "a.json|definitions..Pet", key)
}

func TestMarshal_MaskedSiblingDirectory(t *testing.T) {
	origin := mustParse(t, "file:///specs/a.json")
	target := mustParse(t, "file:///common/shared.json#/definitions/Tag")

	key, err := urikey.Marshal(target, &origin)
	require.NoError(t, err)
	assert.Equal(t, "....common..shared.json|definitions..Tag", key)
}

func TestMarshal_NoOriginKeepsAbsoluteForm(t *testing.T) {
	target := mustParse(t, "file:///specs/a.json#/definitions/Pet")

	key, err := urikey.Marshal(target, nil)
	require.NoError(t, err)
	assert.Equal(t, "file:......specs..a.json|definitions..Pet", key)
}

func TestMarshal_HTTPNotMasked(t *testing.T) {
	origin := mustParse(t, "file:///specs/a.json")
	target := mustParse(t, "https://example.com/b.json#/definitions/Pet")

	key, err := urikey.Marshal(target, &origin)
	require.NoError(t, err)
	assert.Equal(t, "https:....example.com..b.json|definitions..Pet", key)
}

func TestMarshal_EmptySchemeDefaultsToFile(t *testing.T) {
	target := mustParse(t, "/specs/a.json")

	key, err := urikey.Marshal(target, nil)
	require.NoError(t, err)
	assert.Equal(t, "file:......specs..a.json", key)
}

func TestMarshal_RejectsUnknownScheme(t *testing.T) {
	target := mustParse(t, "ftp://example.com/a.json")

	_, err := urikey.Marshal(target, nil)
	assert.ErrorIs(t, err, urikey.ErrInvalidURI)
}

func TestMarshal_OutputNeverContainsSlashOrHash(t *testing.T) {
	origin := mustParse(t, "file:///deep/nested/specs/root.yaml")

	raws := []string{
		"file:///deep/nested/specs/root.yaml#/definitions/a/b/c",
		"file:///other/tree/x.yaml?version=2#/responses/NotFound",
		"http://host:8080/a/b.json#/parameters/token",
		"https://host/a.json",
	}

	for _, raw := range raws {
		key, err := urikey.Marshal(mustParse(t, raw), &origin)
		require.NoError(t, err)
		assert.NotContains(t, key, "/", "raw %q", raw)
		assert.NotContains(t, key, "#", "raw %q", raw)
	}
}
