// Package domain defines the product families and the factory contract.
package domain

import (
	"fmt"
	"strings"
)

// Sandwich is the sandwich product category
type Sandwich int

const (
	Bacon Sandwich = iota
	Peanut
)

func (s Sandwich) String() string {
	switch s {
	case Bacon:
		return "Bacon"
	case Peanut:
		return "Peanut"
	default:
		return fmt.Sprintf("Sandwich(%d)", int(s))
	}
}

// MarshalText renders the variant identifier, so JSON shows "Bacon" rather than 0
func (s Sandwich) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Dessert is the dessert product category
type Dessert int

const (
	CremeBrulee Dessert = iota
	IceCreamSundae
)

func (d Dessert) String() string {
	switch d {
	case CremeBrulee:
		return "CremeBrulee"
	case IceCreamSundae:
		return "IceCreamSundae"
	default:
		return fmt.Sprintf("Dessert(%d)", int(d))
	}
}

// MarshalText renders the variant identifier
func (d Dessert) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Family tags a consistent pairing of one sandwich and one dessert.
// The zero value is AdultFamily, which is also the default selection.
type Family int

const (
	AdultFamily Family = iota
	KidFamily
)

func (f Family) String() string {
	switch f {
	case AdultFamily:
		return "adult"
	case KidFamily:
		return "kid"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// MarshalText renders the family name
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParseFamily maps a user supplied family name to a Family.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "adult", "a":
		return AdultFamily, nil
	case "kid", "child", "c":
		return KidFamily, nil
	default:
		return AdultFamily, NewUnknownFamilyError(name)
	}
}

// Meal is one served pair of products
type Meal struct {
	Family   Family   `json:"family"`
	Sandwich Sandwich `json:"sandwich"`
	Dessert  Dessert  `json:"dessert"`
}

// RecipeFactory creates one product of each category, always from its own family
type RecipeFactory interface {
	Family() Family
	CreateSandwich() Sandwich
	CreateDessert() Dessert
}
