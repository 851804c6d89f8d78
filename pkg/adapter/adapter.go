// Package adapter implements the adapter pattern: a square peg made to fit
// the round-hole interface by converting its width into an effective radius.
package adapter

import "math"

// RoundObject is the interface round holes understand.
type RoundObject interface {
	Radius() float64
}

// RoundPeg is a plain round peg.
type RoundPeg struct {
	radius float64
}

// NewRoundPeg creates a round peg.
func NewRoundPeg(radius float64) *RoundPeg {
	return &RoundPeg{radius: radius}
}

func (p *RoundPeg) Radius() float64 { return p.radius }

// RoundHole accepts any round object that fits.
type RoundHole struct {
	radius float64
}

// NewRoundHole creates a round hole.
func NewRoundHole(radius float64) *RoundHole {
	return &RoundHole{radius: radius}
}

func (h *RoundHole) Radius() float64 { return h.radius }

// Fits reports whether the object passes through the hole.
func (h *RoundHole) Fits(o RoundObject) bool {
	return h.radius >= o.Radius()
}

// SquarePeg does not satisfy RoundObject on its own.
type SquarePeg struct {
	width float64
}

// NewSquarePeg creates a square peg.
func NewSquarePeg(width float64) *SquarePeg {
	return &SquarePeg{width: width}
}

func (p *SquarePeg) Width() float64 { return p.width }

// SquarePegAdapter presents a square peg as a round object. The effective
// radius is half the peg's diagonal.
type SquarePegAdapter struct {
	peg *SquarePeg
}

// NewSquarePegAdapter wraps a square peg.
func NewSquarePegAdapter(peg *SquarePeg) *SquarePegAdapter {
	return &SquarePegAdapter{peg: peg}
}

func (a *SquarePegAdapter) Radius() float64 {
	return a.peg.Width() * math.Sqrt2 / 2
}
