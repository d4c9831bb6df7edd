package cashier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"cafepos/pkg/order"
)

// ParseQuantity converts caller input into a positive quantity.
func ParseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", order.ErrInvalidQuantity, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", order.ErrInvalidQuantity, n)
	}
	return n, nil
}

// ParseAmount converts caller input into a tendered amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", order.ErrInvalidAmount, s)
	}
	return d, nil
}
