package domain

import "slices"

// Catalog is an ordered, immutable list of drink names.
// It may be shared between goroutines without locking.
type Catalog struct {
	drinks []string
}

// NewCatalog creates a catalog holding a copy of the given drinks in order.
// Duplicates are kept.
func NewCatalog(drinks ...string) *Catalog {
	return &Catalog{
		drinks: slices.Clone(drinks),
	}
}

// NewDefaultCatalog creates the catalog with the assortment served by the cafe
func NewDefaultCatalog() *Catalog {
	return NewCatalog("Fanta", "Cola", "Beer")
}

// Assortment returns a copy of all drinks, never nil
func (c *Catalog) Assortment() []string {
	assortment := make([]string, len(c.drinks))
	copy(assortment, c.drinks)
	return assortment
}

func (c *Catalog) Len() int {
	return len(c.drinks)
}
