package tern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternerNeverDeduplicates(t *testing.T) {
	in := NewInterner()
	a := in.Intern("q")
	b := in.Intern("q")
	assert.NotEqual(t, a, b, "Intern must allocate a fresh id even for a repeated name")
}

func TestInternerLookupRoundTrips(t *testing.T) {
	in := NewInterner()
	id := in.Intern("olive")
	name, ok := in.Lookup(id)
	assert.True(t, ok)
	assert.Equal(t, "olive", name)
}

func TestInternerLookupUnknownFails(t *testing.T) {
	in := NewInterner()
	_, ok := in.Lookup(Id(42))
	assert.False(t, ok)
}

func TestInternerMustLookupFallsBackToId(t *testing.T) {
	in := NewInterner()
	assert.Equal(t, "7", in.MustLookup(Id(7)))
}
