// Package builder implements the builder pattern: a Car assembled step by
// step through a Builder interface, with a Director encapsulating the
// standard build recipes.
package builder

import "gitlab.com/tozd/go/errors"

// Car is the product under construction.
type Car struct {
	Seats        int
	Engine       string
	Color        string
	TripComputer bool
	GPS          bool
}

// Builder declares the construction steps common to all car builders.
type Builder interface {
	Reset()
	SetSeats(n int)
	SetEngine(engine string)
	SetTripComputer()
	SetGPS()
	SetColor(color string)
}

// defaultColor is applied when a recipe sets no color.
const defaultColor = "white"

// CarBuilder assembles a Car.
type CarBuilder struct {
	car Car
}

// NewCarBuilder creates a builder holding a fresh car.
func NewCarBuilder() *CarBuilder {
	b := &CarBuilder{}
	b.Reset()
	return b
}

// Reset clears the car being built.
func (b *CarBuilder) Reset() {
	b.car = Car{Color: defaultColor}
}

// SetSeats sets the number of seats.
func (b *CarBuilder) SetSeats(n int) {
	b.car.Seats = n
}

// SetEngine sets the engine type.
func (b *CarBuilder) SetEngine(engine string) {
	b.car.Engine = engine
}

// SetTripComputer installs a trip computer.
func (b *CarBuilder) SetTripComputer() {
	b.car.TripComputer = true
}

// SetGPS installs a global positioning system.
func (b *CarBuilder) SetGPS() {
	b.car.GPS = true
}

// SetColor sets the paint color.
func (b *CarBuilder) SetColor(color string) {
	b.car.Color = color
}

// Product returns the built car and resets the builder for the next build.
func (b *CarBuilder) Product() (Car, error) {
	if b.car.Seats <= 0 {
		return Car{}, errors.Errorf("car needs at least one seat")
	}
	if b.car.Engine == "" {
		return Car{}, errors.Errorf("car needs an engine")
	}
	car := b.car
	b.Reset()
	return car, nil
}

// Director runs the standard build recipes against any Builder.
type Director struct{}

// ConstructSportsCar builds a two-seater.
func (Director) ConstructSportsCar(b Builder) {
	b.Reset()
	b.SetSeats(2)
	b.SetEngine("sport engine")
	b.SetTripComputer()
	b.SetGPS()
	b.SetColor("baby blue")
}

// ConstructSUV builds a seven-seater.
func (Director) ConstructSUV(b Builder) {
	b.Reset()
	b.SetSeats(7)
	b.SetEngine("turbo engine")
	b.SetTripComputer()
	b.SetGPS()
}
