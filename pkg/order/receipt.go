package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	separatorWidth  = 40
	timestampLayout = "02-01-2006 15:04:05"
)

// ReceiptFormat controls the presentation of a receipt.
type ReceiptFormat struct {
	ShopName string
	Currency string
	TaxLabel string
	Closing  string
}

// DefaultReceiptFormat is the format used when none is configured.
var DefaultReceiptFormat = ReceiptFormat{
	ShopName: "COFFEE PALACE",
	Currency: "€",
	TaxLabel: "TAX",
	Closing:  "Thank you for your visit!",
}

// Receipt is the outcome of finalizing an order. Tax is informational and is
// not part of Total.
type Receipt struct {
	Text     string          `json:"text"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	IssuedAt time.Time       `json:"issued_at"`
}

// ValidateTaxRate reports whether rate lies in [0, 1].
func ValidateTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s", ErrInvalidTaxRate, rate)
	}
	return nil
}

// Finalize renders the receipt for the current lines. The order is not
// modified, so calling it again without mutation yields the same lines.
func (o *Order) Finalize(f ReceiptFormat, taxRate decimal.Decimal, now time.Time) (Receipt, error) {
	if o.IsEmpty() {
		return Receipt{}, ErrEmptyOrder
	}
	if err := ValidateTaxRate(taxRate); err != nil {
		return Receipt{}, err
	}
	tax := o.total.Mul(taxRate)
	sep := strings.Repeat("-", separatorWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n", f.ShopName, now.Format(timestampLayout))
	b.WriteString(sep + "\n")
	for _, li := range o.items {
		b.WriteString(renderLine(f.Currency, li) + "\n")
	}
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "%s (%s): %s\n", f.TaxLabel, FormatRate(taxRate), FormatMoney(f.Currency, tax))
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "TOTAL: %s\n", FormatMoney(f.Currency, o.total))
	b.WriteString(f.Closing)

	return Receipt{
		Text:     b.String(),
		TaxRate:  taxRate,
		Tax:      tax.Round(2),
		Total:    o.total,
		IssuedAt: now,
	}, nil
}
