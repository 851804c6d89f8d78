package prototype

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone(t *testing.T) {
	shapes := []struct {
		name  string
		shape Shape
		area  float64
	}{
		{name: "rectangle", shape: NewRectangle(3, 4, "red"), area: 12},
		{name: "default_fill_rectangle", shape: NewRectangle(2, 2, ""), area: 4},
		{name: "circle", shape: NewCircle(10, "blue"), area: math.Pi * 25},
	}

	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			clone := tt.shape.Clone()

			require.NotSame(t, tt.shape, clone, "clone should be a distinct instance")
			assert.Equal(t, tt.shape, clone, "clone should be value-equal to the original")
			assert.InDelta(t, tt.area, clone.Area(), 1e-9, "clone should preserve the area")
			assert.Equal(t, tt.shape.Color(), clone.Color(), "clone should preserve the color")
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := NewRectangle(3, 4, "red")
	clone := original.Clone().(*Rectangle)

	clone.Length = 100
	clone.Fill = "green"

	assert.Equal(t, float64(3), original.Length, "mutating the clone should not touch the original")
	assert.Equal(t, "red", original.Color())
}
