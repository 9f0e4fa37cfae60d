package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"specflat/internal/diagnostic"
)

func TestDiagnostics_Accumulate(t *testing.T) {
	var d diagnostic.Diagnostics

	assert.True(t, d.IsClean())

	d.AddWarning("key-clash", "definitions", "two locations share one key", "file:///a", "file:///b")
	d.AddInfo("origin-missing", "", "no origin supplied")

	assert.False(t, d.IsClean())
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)

	var other diagnostic.Diagnostics
	other.AddWarning("key-clash", "responses", "more clashing")
	d.Merge(other)

	assert.Len(t, d.Warnings, 2)
}

func TestDiagnostic_String(t *testing.T) {
	var d diagnostic.Diagnostics
	d.AddWarning("key-clash", "definitions", "two locations share one key", "file:///a", "file:///b")

	assert.Equal(t,
		"warning [key-clash] definitions: two locations share one key (file:///a, file:///b)",
		d.Warnings[0].String())
}
