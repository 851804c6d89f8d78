// Package prototype implements the prototype pattern: shapes that can be
// cloned without the caller knowing their concrete type.
package prototype

import "math"

// Shape is a cloneable figure.
type Shape interface {
	// Clone returns an independent copy of the shape.
	Clone() Shape
	// Area returns the shape's area.
	Area() float64
	// Color returns the shape's fill color.
	Color() string
}

// Rectangle is a concrete prototype.
type Rectangle struct {
	Length float64
	Width  float64
	Fill   string
}

// NewRectangle creates a rectangle; an empty fill defaults to white.
func NewRectangle(length, width float64, fill string) *Rectangle {
	if fill == "" {
		fill = "white"
	}
	return &Rectangle{Length: length, Width: width, Fill: fill}
}

func (r *Rectangle) Clone() Shape {
	clone := *r
	return &clone
}

func (r *Rectangle) Area() float64 { return r.Length * r.Width }
func (r *Rectangle) Color() string { return r.Fill }

// Circle is a concrete prototype. The diameter is given; the radius is
// derived.
type Circle struct {
	Radius float64
	Fill   string
}

// NewCircle creates a circle from its diameter.
func NewCircle(diameter float64, fill string) *Circle {
	return &Circle{Radius: diameter / 2, Fill: fill}
}

func (c *Circle) Clone() Shape {
	clone := *c
	return &clone
}

func (c *Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }
func (c *Circle) Color() string { return c.Fill }
