package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		HostKind string
		Want     Descriptor
		Ok       bool
	}{
		{"int", Number, true},
		{"float64", Number, true},
		{"number", Number, true},
		{"string", String, true},
		{"str", String, true},
		{"bool", Boolean, true},
		{"boolean", Boolean, true},
		{"any", Any, true},
		{"object", Any, true},
		{"nil", Any, true},
		{"totally-unknown-kind", Descriptor{}, false},
	}

	for _, tc := range tests {
		got, ok := Lookup(tc.HostKind)
		assert.Equal(t, tc.Ok, ok, tc.HostKind)
		if tc.Ok {
			assert.Equal(t, tc.Want, got, tc.HostKind)
		}
	}
}

func TestBuiltinDescriptorsAreDistinct(t *testing.T) {
	seen := map[Name]bool{}
	for _, d := range []Descriptor{String, Number, Boolean, Any} {
		assert.False(t, seen[d.Name], "duplicate descriptor name %s", d.Name)
		seen[d.Name] = true
	}
}

func TestUndefinedSentinelNeverEqualsABuiltin(t *testing.T) {
	assert.True(t, IsUndefined(Descriptor{Name: nameUndefined}))
	for _, d := range []Descriptor{String, Number, Boolean, Any} {
		assert.False(t, IsUndefined(d))
	}
}
