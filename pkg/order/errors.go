package order

import "errors"

var (
	// ErrIndexOutOfRange indicates a catalog or line index outside the valid range.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidQuantity indicates a non-positive or non-numeric quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrEmptyOrder indicates an attempt to complete an order without items.
	ErrEmptyOrder = errors.New("order has no items")
	// ErrNoActiveOrder indicates a mutation before any order exists.
	ErrNoActiveOrder = errors.New("no active order")
	// ErrInsufficientPayment indicates a tendered amount below the order total.
	ErrInsufficientPayment = errors.New("insufficient payment")
	// ErrNotCompleted indicates payment was attempted before the order was completed.
	ErrNotCompleted = errors.New("order not completed")
	// ErrInvalidTaxRate indicates a tax rate outside [0, 1].
	ErrInvalidTaxRate = errors.New("invalid tax rate")
	// ErrInvalidProduct indicates a product with an empty name or negative amounts.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrInvalidAmount indicates a tendered amount that is not a number.
	ErrInvalidAmount = errors.New("invalid amount")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrIndexOutOfRange, "IndexOutOfRange"},
	{ErrInvalidQuantity, "InvalidQuantity"},
	{ErrEmptyOrder, "EmptyOrder"},
	{ErrNoActiveOrder, "NoActiveOrder"},
	{ErrInsufficientPayment, "InsufficientPayment"},
	{ErrNotCompleted, "NotCompleted"},
	{ErrInvalidTaxRate, "InvalidTaxRate"},
	{ErrInvalidProduct, "InvalidProduct"},
	{ErrInvalidAmount, "InvalidAmount"},
}

// Kind returns the name of the domain error wrapped by err, or "" when err
// is nil or not a domain error.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}
