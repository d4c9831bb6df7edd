package order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is a purchasable catalog entry. Stock is informational and is
// never decremented.
type Product struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock,omitempty"`
}

// NewProduct builds a product from a float price, as the static menus are
// written.
func NewProduct(name string, price float64, stock int) Product {
	return Product{Name: name, Price: decimal.NewFromFloat(price), Stock: stock}
}

// Validate reports whether p can be sold.
func (p Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidProduct)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: %s has negative price %s", ErrInvalidProduct, p.Name, p.Price)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: %s has negative stock %d", ErrInvalidProduct, p.Name, p.Stock)
	}
	return nil
}

// Source supplies the product list a Catalog is built from at startup.
type Source interface {
	Products(ctx context.Context) ([]Product, error)
}

// LoadCatalog reads all products from src and builds a catalog.
func LoadCatalog(ctx context.Context, src Source) (*Catalog, error) {
	products, err := src.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return NewCatalog(products)
}
