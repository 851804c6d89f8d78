package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFits(t *testing.T) {
	hole := NewRoundHole(5)

	tests := []struct {
		name string
		obj  RoundObject
		want bool
	}{
		{name: "matching_round_peg", obj: NewRoundPeg(5), want: true},
		{name: "oversized_round_peg", obj: NewRoundPeg(6), want: false},
		{name: "small_square_peg", obj: NewSquarePegAdapter(NewSquarePeg(5)), want: true},
		{name: "large_square_peg", obj: NewSquarePegAdapter(NewSquarePeg(10)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hole.Fits(tt.obj))
		})
	}
}

func TestAdapterRadius(t *testing.T) {
	// a 10-wide square has a half-diagonal of ~7.07
	a := NewSquarePegAdapter(NewSquarePeg(10))
	assert.InDelta(t, 7.0710678, a.Radius(), 1e-6, "radius should be half the diagonal")
}
