package order

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MenuEntry is one enumerated catalog row. Index is 1-based.
type MenuEntry struct {
	Index int             `json:"index"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Catalog is an immutable, ordered list of products.
type Catalog struct {
	products []Product
}

// NewCatalog validates products and returns a catalog holding a copy of them.
func NewCatalog(products []Product) (*Catalog, error) {
	out := make([]Product, len(products))
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("product %d: %w", i, err)
		}
		out[i] = p
	}
	return &Catalog{products: out}, nil
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// ProductAt returns the product at the 0-based index.
func (c *Catalog) ProductAt(index int) (Product, error) {
	if index < 0 || index >= len(c.products) {
		return Product{}, fmt.Errorf("%w: catalog index %d, have %d products", ErrIndexOutOfRange, index, len(c.products))
	}
	return c.products[index], nil
}

// Products returns a copy of the product list.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Menu returns the 1-based enumerated view of the catalog.
func (c *Catalog) Menu() []MenuEntry {
	out := make([]MenuEntry, len(c.products))
	for i, p := range c.products {
		out[i] = MenuEntry{Index: i + 1, Name: p.Name, Price: p.Price}
	}
	return out
}

// MenuLines formats the menu as "{index}. {name} - {currency}{price}".
func (c *Catalog) MenuLines(currency string) []string {
	out := make([]string, len(c.products))
	for i, p := range c.products {
		out[i] = fmt.Sprintf("%d. %s - %s", i+1, p.Name, FormatMoney(currency, p.Price))
	}
	return out
}
