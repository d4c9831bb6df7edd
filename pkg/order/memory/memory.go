// Package memory implements an in-memory product source.
package memory

import (
	"context"
	"sync"

	"cafepos/pkg/order"
)

// Source provides an in-memory implementation of order.Source.
type Source struct {
	mu       sync.RWMutex
	products []order.Product
}

// New creates a source holding products in the given order.
func New(products ...order.Product) *Source {
	s := &Source{}
	s.products = append(s.products, products...)
	return s
}

// Default returns a source with the café's standard menu.
func Default() *Source {
	return New(
		order.NewProduct("Coffee", 1.50, 10),
		order.NewProduct("Tea", 1.20, 15),
		order.NewProduct("Beer", 2.30, 20),
		order.NewProduct("Muffin", 2.00, 25),
		order.NewProduct("Sandwich", 3.50, 30),
		order.NewProduct("Cake", 2.50, 12),
		order.NewProduct("Pizza Margarita", 6.50, 8),
		order.NewProduct("Patatas Bravas", 5.50, 18),
		order.NewProduct("Hamburger with Cheese", 7.00, 15),
		order.NewProduct("Coca-Cola", 2.80, 10),
		order.NewProduct("Vermut", 2.20, 20),
		order.NewProduct("Fanta Naranja", 2.80, 10),
		order.NewProduct("Nestea", 2.30, 10),
	)
}

// Add appends a product.
func (s *Source) Add(p order.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}

// Products returns all products in insertion order.
func (s *Source) Products(ctx context.Context) ([]order.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]order.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

var _ order.Source = (*Source)(nil)
