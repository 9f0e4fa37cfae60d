package node_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"specflat/node"
)

func TestParse_Kinds(t *testing.T) {
	doc := `
title: petstore
count: 3
enabled: true
ratio: 0.5
nothing: null
tags:
  - a
  - b
pet:
  $ref: "#/definitions/Pet"
`
	n, err := node.Parse([]byte(doc))
	require.NoError(t, err)

	m, ok := n.(*node.Mapping)
	require.True(t, ok)
	assert.Equal(t, node.KindMapping, m.Kind())

	title, ok := m.Get("title")
	require.True(t, ok)
	s, ok := node.StringValue(title)
	require.True(t, ok)
	assert.Equal(t, "petstore", s)

	count, _ := m.Get("count")
	assert.Equal(t, 3, count.(*node.Scalar).Value)

	enabled, _ := m.Get("enabled")
	assert.Equal(t, true, enabled.(*node.Scalar).Value)

	ratio, _ := m.Get("ratio")
	assert.Equal(t, 0.5, ratio.(*node.Scalar).Value)

	nothing, _ := m.Get("nothing")
	assert.Nil(t, nothing.(*node.Scalar).Value)

	tags, _ := m.Get("tags")
	require.Equal(t, node.KindSequence, tags.Kind())
	assert.Len(t, tags.(*node.Sequence).Items, 2)

	pet, _ := m.Get("pet")
	require.Equal(t, node.KindReference, pet.Kind())
	assert.Equal(t, "#/definitions/Pet", pet.(*node.Reference).Target)
}

func TestParse_JSONInput(t *testing.T) {
	n, err := node.Parse([]byte(`{"a": 1, "b": [true, null]}`))
	require.NoError(t, err)

	m, ok := n.(*node.Mapping)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
}

func TestParse_KeyOrderPreserved(t *testing.T) {
	doc := `
zulu: 1
alpha: 2
mike: 3
bravo: 4
`
	n, err := node.Parse([]byte(doc))
	require.NoError(t, err)

	m := n.(*node.Mapping)
	assert.Equal(t, []string{"zulu", "alpha", "mike", "bravo"}, m.Keys())
}

func TestParse_RefSiblingsDropped(t *testing.T) {
	n, err := node.Parse([]byte(`{"$ref": "#/a", "description": "ignored"}`))
	require.NoError(t, err)

	ref, ok := n.(*node.Reference)
	require.True(t, ok)
	assert.Equal(t, "#/a", ref.Target)
}

func TestParse_NonStringRefStaysMapping(t *testing.T) {
	n, err := node.Parse([]byte(`{"$ref": 42}`))
	require.NoError(t, err)

	_, ok := n.(*node.Mapping)
	assert.True(t, ok)
}

func TestParse_Empty(t *testing.T) {
	_, err := node.Parse(nil)
	assert.Error(t, err)
}

func TestMapping_SetGetDelete(t *testing.T) {
	m := node.NewMapping()
	m.Set("a", node.NewScalar(1))
	m.Set("b", node.NewScalar(2))
	m.Set("c", node.NewScalar(3))
	m.Set("b", node.NewScalar(20))

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())

	b, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 20, b.(*node.Scalar).Value)

	m.Delete("a")
	assert.Equal(t, []string{"b", "c"}, m.Keys())

	c, ok := m.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, c.(*node.Scalar).Value)
}

func TestClone_Independence(t *testing.T) {
	n, err := node.Parse([]byte(`{"a": {"b": [1, 2]}}`))
	require.NoError(t, err)

	clone := n.Clone().(*node.Mapping)

	inner, _ := clone.Get("a")
	inner.(*node.Mapping).Set("b", node.NewScalar("changed"))

	orig, _ := n.(*node.Mapping).Get("a")
	b, _ := orig.(*node.Mapping).Get("b")
	assert.Equal(t, node.KindSequence, b.Kind())
}

func TestMarshalJSON_OrderPreserved(t *testing.T) {
	n, err := node.Parse([]byte(`{"z": 1, "a": {"$ref": "#/z"}, "m": [1, "x"]}`))
	require.NoError(t, err)

	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":1,"a":{"$ref":"#/z"},"m":[1,"x"]}`, string(out))
	assert.Equal(t, `{"z":1,"a":{"$ref":"#/z"},"m":[1,"x"]}`, string(out))
}

func TestMarshalYAML_RoundTrip(t *testing.T) {
	in := "zulu: 1\nalpha:\n    $ref: '#/zulu'\nmike:\n    - true\n"

	n, err := node.Parse([]byte(in))
	require.NoError(t, err)

	out, err := yaml.Marshal(n)
	require.NoError(t, err)

	back, err := node.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, back.(*node.Mapping).Keys())
}
