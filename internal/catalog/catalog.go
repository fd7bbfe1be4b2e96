// Package catalog holds the read-only product list and the pure queries over it.
package catalog

import (
	"github.com/ariefcatur/gunpla-storefront/internal/apperr"
)

// Catalog is immutable after New; accessors return copies of the backing slice.
type Catalog struct {
	products []Product
	byID     map[string]int
}

func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, apperr.Validationf("duplicate product id %s", p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int { return len(c.products) }

func (c *Catalog) Get(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Sale lists the products with a sale price (the Deals screen).
func (c *Catalog) Sale() []Product {
	var out []Product
	for _, p := range c.products {
		if p.OnSale() {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the first n products in catalog order.
func (c *Catalog) Featured(n int) []Product {
	if n > len(c.products) {
		n = len(c.products)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Product, n)
	copy(out, c.products[:n])
	return out
}
