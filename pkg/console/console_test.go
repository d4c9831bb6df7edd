package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafepos/pkg/cashier"
	"cafepos/pkg/order"
	"cafepos/pkg/printer"
)

type jobs []printer.Job

func (j *jobs) Print(ctx context.Context, job printer.Job) error {
	*j = append(*j, job)
	return nil
}

func newRegister(t *testing.T, input string) (*Register, *bytes.Buffer, *jobs) {
	t.Helper()
	catalog, err := order.NewCatalog([]order.Product{
		order.NewProduct("Coffee", 1.50, 10),
		order.NewProduct("Tea", 1.20, 15),
	})
	require.NoError(t, err)
	c, err := cashier.New(catalog, cashier.Options{
		TaxRate: decimal.RequireFromString("0.21"),
		Clock:   func() time.Time { return time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	out := &bytes.Buffer{}
	q := &jobs{}
	return &Register{Cashier: c, In: strings.NewReader(input), Out: out, Printer: q, Name: "ana"}, out, q
}

func TestRegisterTransaction(t *testing.T) {
	r, out, q := newRegister(t, "1 2\n2 1\nc\np 4\np 5.00\n0\n")
	require.NoError(t, r.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "1. Coffee - €1.50")
	assert.Contains(t, got, "1. Coffee x 2 - €3.00")
	assert.Contains(t, got, "2. Tea x 1 - €1.20")
	assert.Contains(t, got, "Total: €4.20")
	assert.Contains(t, got, "COFFEE PALACE - 18-10-2026 09:30:00")
	assert.Contains(t, got, "TAX (21%): €0.88")
	assert.Contains(t, got, "TOTAL: €4.20")
	assert.Contains(t, got, "error: insufficient payment")
	assert.Contains(t, got, "Change: €0.80")
	assert.Equal(t, cashier.NoActiveOrder, r.Cashier.State())

	require.Len(t, *q, 1)
	assert.Equal(t, "ana", (*q)[0].Cashier)
}

func TestRegisterReportsInputErrors(t *testing.T) {
	r, out, _ := newRegister(t, "c\nr 1\n9 1\n1 abc\n1 0\nx\np 1\nn\nc\n1 1\nr 5\np\np 1\n")
	require.NoError(t, r.Run(context.Background()))

	got := out.String()
	for _, want := range []string{
		"error: no active order",
		"error: no such item",
		"error: quantity must be a positive whole number",
		`error: unknown command "x"`,
		"error: order is empty",
		"error: amount must be a number",
		"error: complete the order before paying",
	} {
		assert.Contains(t, got, want)
	}
	assert.Equal(t, "1.5", r.Cashier.Total().String())
	assert.Equal(t, cashier.ActiveOrder, r.Cashier.State())
}

func TestRegisterRemoveLine(t *testing.T) {
	r, out, _ := newRegister(t, "1 1\n2 3\nr 1\nl\nq\n")
	require.NoError(t, r.Run(context.Background()))

	assert.Contains(t, out.String(), "Removed Coffee x 1.")
	assert.Equal(t, []string{"Tea x 3 - €3.60"}, r.Cashier.Render())
}

func TestRegisterStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, _, _ := newRegister(t, "1 1\n")
	assert.ErrorIs(t, r.Run(ctx), context.Canceled)
}
