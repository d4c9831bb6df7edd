package cashier

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafepos/pkg/order"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newTestCashier(t *testing.T) *Cashier {
	t.Helper()
	catalog, err := order.NewCatalog([]order.Product{
		order.NewProduct("Coffee", 1.50, 10),
		order.NewProduct("Tea", 1.20, 15),
	})
	require.NoError(t, err)
	c, err := New(catalog, Options{
		Currency: "€",
		TaxRate:  decimal.RequireFromString("0.21"),
		Clock:    func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return c
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCoffeeAndTeaScenario(t *testing.T) {
	c := newTestCashier(t)
	assert.Equal(t, NoActiveOrder, c.State())

	require.NoError(t, c.TakeOrder(0, 2))
	assert.Equal(t, ActiveOrder, c.State())
	assert.Equal(t, "3.00", c.Total().StringFixed(2))

	require.NoError(t, c.TakeOrder(1, 1))
	assert.Equal(t, "4.20", c.Total().StringFixed(2))

	r, err := c.CompleteOrder(money("0.21"))
	require.NoError(t, err)
	assert.Contains(t, r.Text, "TAX (21%): €0.88")
	assert.Contains(t, r.Text, "TOTAL: €4.20")
	assert.True(t, strings.HasPrefix(r.Text, "COFFEE PALACE - 18-10-2026 12:00:00"))
	assert.Equal(t, AwaitingPayment, c.State())
	assert.Equal(t, "4.20", c.Total().StringFixed(2), "completed order stays queryable")

	change, err := c.SettlePayment(money("5.00"))
	require.NoError(t, err)
	assert.Equal(t, "0.80", change.StringFixed(2))
	assert.Equal(t, NoActiveOrder, c.State())
	assert.True(t, c.Total().IsZero())
	assert.Empty(t, c.Render())
}

func TestListMenu(t *testing.T) {
	c := newTestCashier(t)
	assert.Equal(t, []string{"1. Coffee - €1.50", "2. Tea - €1.20"}, c.ListMenu())
}

func TestTakeOrderValidatesBeforeMutating(t *testing.T) {
	c := newTestCashier(t)

	require.ErrorIs(t, c.TakeOrder(0, 0), order.ErrInvalidQuantity)
	require.ErrorIs(t, c.TakeOrder(0, -3), order.ErrInvalidQuantity)
	require.ErrorIs(t, c.TakeOrder(7, 1), order.ErrIndexOutOfRange)
	assert.Equal(t, NoActiveOrder, c.State(), "failed calls must not start an order")

	require.ErrorIs(t, c.TakeOrderInput(0, "two"), order.ErrInvalidQuantity)
	require.ErrorIs(t, c.TakeOrderInput(0, "1.5"), order.ErrInvalidQuantity)
	require.NoError(t, c.TakeOrderInput(0, " 3 "))
	assert.Equal(t, []string{"Coffee x 3 - €4.50"}, c.Render())
}

func TestRemoveItem(t *testing.T) {
	c := newTestCashier(t)

	_, err := c.RemoveItem(0)
	require.ErrorIs(t, err, order.ErrNoActiveOrder)

	require.NoError(t, c.TakeOrder(0, 1))
	_, err = c.RemoveItem(5)
	require.ErrorIs(t, err, order.ErrIndexOutOfRange)
	assert.Equal(t, "1.50", c.Total().StringFixed(2))

	li, err := c.RemoveItem(0)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", li.Name)
	assert.True(t, c.Total().IsZero())

	_, err = c.RemoveItem(0)
	require.ErrorIs(t, err, order.ErrIndexOutOfRange)
}

func TestCompleteOrderErrors(t *testing.T) {
	c := newTestCashier(t)

	_, err := c.Complete()
	require.ErrorIs(t, err, order.ErrEmptyOrder)
	assert.Equal(t, NoActiveOrder, c.State())

	c.StartOrder()
	_, err = c.Complete()
	require.ErrorIs(t, err, order.ErrEmptyOrder)
	assert.Equal(t, ActiveOrder, c.State())

	require.NoError(t, c.TakeOrder(1, 1))
	_, err = c.CompleteOrder(money("2"))
	require.ErrorIs(t, err, order.ErrInvalidTaxRate)
	assert.Equal(t, ActiveOrder, c.State())
}

func TestSettlePaymentInsufficient(t *testing.T) {
	c := newTestCashier(t)
	require.NoError(t, c.TakeOrder(0, 2))
	require.NoError(t, c.TakeOrder(1, 1))
	_, err := c.Complete()
	require.NoError(t, err)

	before := c.View()
	for _, amount := range []string{"4.19", "0", "-10"} {
		_, err := c.SettlePayment(money(amount))
		require.ErrorIs(t, err, order.ErrInsufficientPayment)
	}
	assert.Equal(t, before, c.View())
	assert.Equal(t, AwaitingPayment, c.State())

	change, err := c.SettlePayment(money("4.20"))
	require.NoError(t, err)
	assert.True(t, change.IsZero())
}

func TestSettlePaymentRequiresCompletion(t *testing.T) {
	c := newTestCashier(t)
	_, err := c.SettlePayment(money("10"))
	require.ErrorIs(t, err, order.ErrNoActiveOrder)

	require.NoError(t, c.TakeOrder(0, 1))
	_, err = c.SettlePayment(money("10"))
	require.ErrorIs(t, err, order.ErrNotCompleted)
	assert.Equal(t, 1, len(c.Items()))
}

func TestStartOrderDiscardsCurrent(t *testing.T) {
	c := newTestCashier(t)
	require.NoError(t, c.TakeOrder(0, 4))
	c.StartOrder()
	assert.Equal(t, ActiveOrder, c.State())
	assert.Empty(t, c.Items())
	assert.True(t, c.Total().IsZero())
}

func TestMutationAfterCompletionReopensOrder(t *testing.T) {
	c := newTestCashier(t)
	require.NoError(t, c.TakeOrder(0, 1))
	_, err := c.Complete()
	require.NoError(t, err)

	require.NoError(t, c.TakeOrder(1, 1))
	assert.Equal(t, ActiveOrder, c.State())
	_, err = c.SettlePayment(money("10"))
	require.ErrorIs(t, err, order.ErrNotCompleted)

	r, err := c.Complete()
	require.NoError(t, err)
	assert.Equal(t, "2.70", r.Total.StringFixed(2))
}

func TestNewRejectsBadConfig(t *testing.T) {
	catalog, err := order.NewCatalog(nil)
	require.NoError(t, err)

	_, err = New(catalog, Options{TaxRate: money("1.01")})
	require.ErrorIs(t, err, order.ErrInvalidTaxRate)

	_, err = New(nil, Options{})
	require.Error(t, err)

	c, err := New(catalog, Options{})
	require.NoError(t, err)
	assert.Equal(t, "€", c.Currency())
	assert.True(t, c.TaxRate().IsZero())
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount(" 5.00 ")
	require.NoError(t, err)
	assert.Equal(t, "5.00", d.StringFixed(2))

	_, err = ParseAmount("five")
	require.ErrorIs(t, err, order.ErrInvalidAmount)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "awaiting_payment", AwaitingPayment.String())
	assert.Equal(t, "unknown", State(42).String())
}
