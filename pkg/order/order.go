// Package order holds the café domain: products, the catalog, the
// in-progress order and the receipt it produces.
package order

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineItem is a product snapshot with a chosen quantity. Quantity is always
// positive.
type LineItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal returns UnitPrice * Quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Order accumulates the line items of one customer transaction.
// The zero value is an empty order ready to use.
type Order struct {
	items []LineItem
	total decimal.Decimal
}

// New returns an empty order.
func New() *Order {
	return &Order{}
}

// AddItem appends a snapshot of product with quantity. Repeated adds of the
// same product produce separate lines.
func (o *Order) AddItem(p Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	li := LineItem{Name: p.Name, UnitPrice: p.Price, Quantity: quantity}
	o.items = append(o.items, li)
	o.total = o.total.Add(li.LineTotal())
	return nil
}

// RemoveItem deletes the line at the 0-based index and returns it.
func (o *Order) RemoveItem(index int) (LineItem, error) {
	if index < 0 || index >= len(o.items) {
		return LineItem{}, fmt.Errorf("%w: line %d, order has %d lines", ErrIndexOutOfRange, index, len(o.items))
	}
	li := o.items[index]
	o.items = append(o.items[:index], o.items[index+1:]...)
	o.total = o.total.Sub(li.LineTotal())
	return li, nil
}

// Items returns a copy of the lines in insertion order.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Len returns the number of lines.
func (o *Order) Len() int { return len(o.items) }

// IsEmpty reports whether the order has no lines.
func (o *Order) IsEmpty() bool { return len(o.items) == 0 }

// Total returns the pre-tax sum of all lines.
func (o *Order) Total() decimal.Decimal { return o.total }

// Render formats each line as "{name} x {quantity} - {currency}{lineTotal}".
func (o *Order) Render(currency string) []string {
	out := make([]string, len(o.items))
	for i, li := range o.items {
		out[i] = renderLine(currency, li)
	}
	return out
}

func renderLine(currency string, li LineItem) string {
	return fmt.Sprintf("%s x %d - %s", li.Name, li.Quantity, FormatMoney(currency, li.LineTotal()))
}
