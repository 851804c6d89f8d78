// Package factory implements the abstract factory pattern: families of
// furniture products created through a common factory interface, so client
// code never names a concrete style.
package factory

import "gitlab.com/tozd/go/errors"

// Chair is one product kind.
type Chair interface {
	HasLegs() bool
	SitOn() bool
	CanPurchase() bool
}

// Sofa is one product kind.
type Sofa interface {
	HasLegs() bool
	SitOn() bool
	CanPurchase() bool
}

// CoffeeTable is one product kind.
type CoffeeTable interface {
	HasLegs() bool
	SitOn() bool
	CanPurchase() bool
}

// FurnitureFactory creates a matched family of products.
type FurnitureFactory interface {
	NewChair() Chair
	NewSofa() Sofa
	NewCoffeeTable() CoffeeTable
}

// Styles understood by For.
const (
	StyleModern    = "modern"
	StyleVictorian = "victorian"
	StyleArtDeco   = "artdeco"
)

// For returns the factory for a named style.
func For(style string) (FurnitureFactory, error) {
	switch style {
	case StyleModern:
		return ModernFactory{}, nil
	case StyleVictorian:
		return VictorianFactory{}, nil
	case StyleArtDeco:
		return ArtDecoFactory{}, nil
	default:
		return nil, errors.Errorf("unknown furniture style %q", style)
	}
}

// ModernFactory creates modern furniture.
type ModernFactory struct{}

func (ModernFactory) NewChair() Chair             { return modernChair{} }
func (ModernFactory) NewSofa() Sofa               { return modernSofa{} }
func (ModernFactory) NewCoffeeTable() CoffeeTable { return modernCoffeeTable{} }

// VictorianFactory creates victorian furniture.
type VictorianFactory struct{}

func (VictorianFactory) NewChair() Chair             { return victorianChair{} }
func (VictorianFactory) NewSofa() Sofa               { return victorianSofa{} }
func (VictorianFactory) NewCoffeeTable() CoffeeTable { return victorianCoffeeTable{} }

// ArtDecoFactory creates art-deco furniture. Art-deco pieces are display
// items and cannot be purchased.
type ArtDecoFactory struct{}

func (ArtDecoFactory) NewChair() Chair             { return artDecoChair{} }
func (ArtDecoFactory) NewSofa() Sofa               { return artDecoSofa{} }
func (ArtDecoFactory) NewCoffeeTable() CoffeeTable { return artDecoCoffeeTable{} }

type modernChair struct{}

func (modernChair) HasLegs() bool     { return true }
func (modernChair) SitOn() bool       { return true }
func (modernChair) CanPurchase() bool { return true }

type victorianChair struct{}

func (victorianChair) HasLegs() bool     { return true }
func (victorianChair) SitOn() bool       { return true }
func (victorianChair) CanPurchase() bool { return true }

type artDecoChair struct{}

func (artDecoChair) HasLegs() bool     { return true }
func (artDecoChair) SitOn() bool       { return true }
func (artDecoChair) CanPurchase() bool { return false }

type modernSofa struct{}

func (modernSofa) HasLegs() bool     { return true }
func (modernSofa) SitOn() bool       { return true }
func (modernSofa) CanPurchase() bool { return true }

type victorianSofa struct{}

func (victorianSofa) HasLegs() bool     { return true }
func (victorianSofa) SitOn() bool       { return true }
func (victorianSofa) CanPurchase() bool { return true }

type artDecoSofa struct{}

func (artDecoSofa) HasLegs() bool     { return true }
func (artDecoSofa) SitOn() bool       { return true }
func (artDecoSofa) CanPurchase() bool { return false }

type modernCoffeeTable struct{}

func (modernCoffeeTable) HasLegs() bool     { return true }
func (modernCoffeeTable) SitOn() bool       { return false }
func (modernCoffeeTable) CanPurchase() bool { return true }

type victorianCoffeeTable struct{}

func (victorianCoffeeTable) HasLegs() bool     { return true }
func (victorianCoffeeTable) SitOn() bool       { return false }
func (victorianCoffeeTable) CanPurchase() bool { return true }

type artDecoCoffeeTable struct{}

func (artDecoCoffeeTable) HasLegs() bool     { return true }
func (artDecoCoffeeTable) SitOn() bool       { return false }
func (artDecoCoffeeTable) CanPurchase() bool { return false }
