package order

import "github.com/shopspring/decimal"

// FormatMoney renders amount with the currency symbol and two decimals.
func FormatMoney(currency string, amount decimal.Decimal) string {
	return currency + amount.StringFixed(2)
}

// FormatRate renders a fractional rate as a percentage without trailing
// zeros, e.g. 0.21 as "21%" and 0.075 as "7.5%".
func FormatRate(rate decimal.Decimal) string {
	return rate.Shift(2).String() + "%"
}
