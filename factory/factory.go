// Package factory provides the concrete recipe factories and the key based selection.
package factory

import (
	"cuisine/domain"
	"strconv"
)

// pairing is one row of the family table
type pairing struct {
	sandwich domain.Sandwich
	dessert  domain.Dessert
}

// families is indexed by domain.Family; both products of a family come from the same row.
var families = [...]pairing{
	domain.AdultFamily: {sandwich: domain.Bacon, dessert: domain.CremeBrulee},
	domain.KidFamily:   {sandwich: domain.Peanut, dessert: domain.IceCreamSundae},
}

// CuisineFactory is a stateless domain.RecipeFactory bound to one family
type CuisineFactory struct {
	family domain.Family
}

// compile-time assertion that CuisineFactory implements domain.RecipeFactory
var _ domain.RecipeFactory = (*CuisineFactory)(nil)

// NewAdultCuisineFactory returns the factory for AdultFamily
func NewAdultCuisineFactory() *CuisineFactory {
	return &CuisineFactory{family: domain.AdultFamily}
}

// NewKidCuisineFactory returns the factory for KidFamily
func NewKidCuisineFactory() *CuisineFactory {
	return &CuisineFactory{family: domain.KidFamily}
}

// NewFactory constructs a domain.RecipeFactory by family.
// A tag outside the family table is an UnknownFamilyError.
func NewFactory(family domain.Family) (domain.RecipeFactory, error) {
	switch family {
	case domain.AdultFamily:
		return NewAdultCuisineFactory(), nil
	case domain.KidFamily:
		return NewKidCuisineFactory(), nil
	default:
		return nil, domain.NewUnknownFamilyError(strconv.Itoa(int(family)))
	}
}

func (f *CuisineFactory) Family() domain.Family {
	return f.family
}

func (f *CuisineFactory) CreateSandwich() domain.Sandwich {
	return families[f.family].sandwich
}

func (f *CuisineFactory) CreateDessert() domain.Dessert {
	return families[f.family].dessert
}

// SelectFamily maps a single input key to a family.
// Only an upper-case 'C' selects KidFamily; anything else, including the
// zero rune used for "no input", falls through to AdultFamily.
func SelectFamily(key rune) domain.Family {
	if key == 'C' {
		return domain.KidFamily
	}
	return domain.AdultFamily
}

// ForKey returns the factory selected by key. It never fails.
func ForKey(key rune) domain.RecipeFactory {
	if SelectFamily(key) == domain.KidFamily {
		return NewKidCuisineFactory()
	}
	return NewAdultCuisineFactory()
}

// Serve asks f for one sandwich and one dessert
func Serve(f domain.RecipeFactory) domain.Meal {
	return domain.Meal{
		Family:   f.Family(),
		Sandwich: f.CreateSandwich(),
		Dessert:  f.CreateDessert(),
	}
}

// Families lists every family in declaration order
func Families() []domain.Family {
	out := make([]domain.Family, 0, len(families))
	for i := range families {
		out = append(out, domain.Family(i))
	}
	return out
}
