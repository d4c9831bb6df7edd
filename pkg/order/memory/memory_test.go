package memory

import (
	"context"
	"testing"

	"cafepos/pkg/order"
)

func TestSource(t *testing.T) {
	ctx := context.Background()
	src := New(order.NewProduct("Coffee", 1.50, 0))
	src.Add(order.NewProduct("Tea", 1.20, 0))

	products, err := src.Products(ctx)
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[1].Name != "Tea" {
		t.Fatalf("expected Tea, got %s", products[1].Name)
	}

	products[0].Name = "Changed"
	again, _ := src.Products(ctx)
	if again[0].Name != "Coffee" {
		t.Fatalf("source mutated through returned slice: %s", again[0].Name)
	}
}

func TestDefaultLoadsIntoCatalog(t *testing.T) {
	c, err := order.LoadCatalog(context.Background(), Default())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 13 {
		t.Fatalf("expected 13 products, got %d", c.Len())
	}
	first, err := c.ProductAt(0)
	if err != nil {
		t.Fatalf("product 0: %v", err)
	}
	if first.Name != "Coffee" || first.Price.StringFixed(2) != "1.50" {
		t.Fatalf("unexpected first product: %+v", first)
	}
}
