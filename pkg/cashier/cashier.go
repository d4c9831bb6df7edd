package cashier

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"cafepos/pkg/order"
)

// Options configures a Cashier. Zero fields fall back to
// order.DefaultReceiptFormat and time.Now.
type Options struct {
	Currency string
	TaxRate  decimal.Decimal
	TaxLabel string
	ShopName string
	Clock    func() time.Time
}

// Cashier is the order engine for one terminal.
type Cashier struct {
	catalog *order.Catalog
	format  order.ReceiptFormat
	taxRate decimal.Decimal
	clock   func() time.Time

	current *order.Order
	state   State
}

// View is a read-only snapshot of the current order for display.
type View struct {
	State State            `json:"state"`
	Items []order.LineItem `json:"items"`
	Lines []string         `json:"lines"`
	Total decimal.Decimal  `json:"total"`
}

// New creates a cashier over catalog.
func New(catalog *order.Catalog, opts Options) (*Cashier, error) {
	if catalog == nil {
		return nil, fmt.Errorf("cashier: nil catalog")
	}
	if err := order.ValidateTaxRate(opts.TaxRate); err != nil {
		return nil, err
	}
	f := order.DefaultReceiptFormat
	if opts.Currency != "" {
		f.Currency = opts.Currency
	}
	if opts.TaxLabel != "" {
		f.TaxLabel = opts.TaxLabel
	}
	if opts.ShopName != "" {
		f.ShopName = opts.ShopName
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Cashier{catalog: catalog, format: f, taxRate: opts.TaxRate, clock: clock}, nil
}

// Currency returns the configured currency symbol.
func (c *Cashier) Currency() string { return c.format.Currency }

// TaxRate returns the configured tax rate.
func (c *Cashier) TaxRate() decimal.Decimal { return c.taxRate }

// Catalog returns the shared catalog.
func (c *Cashier) Catalog() *order.Catalog { return c.catalog }

// State returns the lifecycle state of the current order.
func (c *Cashier) State() State { return c.state }

// ListMenu returns the formatted menu lines.
func (c *Cashier) ListMenu() []string {
	return c.catalog.MenuLines(c.format.Currency)
}

// StartOrder discards any current order and begins an empty one.
func (c *Cashier) StartOrder() {
	c.current = order.New()
	c.state = ActiveOrder
}

// TakeOrder adds quantity units of the catalog product at the 0-based index,
// starting an order if none is active.
func (c *Cashier) TakeOrder(catalogIndex, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", order.ErrInvalidQuantity, quantity)
	}
	p, err := c.catalog.ProductAt(catalogIndex)
	if err != nil {
		return err
	}
	if c.current == nil {
		c.StartOrder()
	}
	if err := c.current.AddItem(p, quantity); err != nil {
		return err
	}
	c.state = ActiveOrder
	return nil
}

// TakeOrderInput is TakeOrder with the quantity still in caller text form.
func (c *Cashier) TakeOrderInput(catalogIndex int, quantity string) error {
	n, err := ParseQuantity(quantity)
	if err != nil {
		return err
	}
	return c.TakeOrder(catalogIndex, n)
}

// RemoveItem deletes the 0-based line from the current order.
func (c *Cashier) RemoveItem(lineIndex int) (order.LineItem, error) {
	if c.current == nil {
		return order.LineItem{}, order.ErrNoActiveOrder
	}
	li, err := c.current.RemoveItem(lineIndex)
	if err != nil {
		return order.LineItem{}, err
	}
	c.state = ActiveOrder
	return li, nil
}

// CompleteOrder produces the receipt for the current order. The order stays
// in place, awaiting payment.
func (c *Cashier) CompleteOrder(taxRate decimal.Decimal) (order.Receipt, error) {
	if c.current == nil {
		return order.Receipt{}, fmt.Errorf("%w: no order started", order.ErrEmptyOrder)
	}
	r, err := c.current.Finalize(c.format, taxRate, c.clock())
	if err != nil {
		return order.Receipt{}, err
	}
	c.state = AwaitingPayment
	return r, nil
}

// Complete is CompleteOrder at the configured tax rate.
func (c *Cashier) Complete() (order.Receipt, error) {
	return c.CompleteOrder(c.taxRate)
}

// SettlePayment accepts the tendered amount for a completed order and
// returns the change. On success the order is discarded.
func (c *Cashier) SettlePayment(amount decimal.Decimal) (decimal.Decimal, error) {
	switch c.state {
	case NoActiveOrder:
		return decimal.Zero, order.ErrNoActiveOrder
	case ActiveOrder:
		return decimal.Zero, order.ErrNotCompleted
	}
	total := c.current.Total()
	if amount.LessThan(total) {
		return decimal.Zero, fmt.Errorf("%w: tendered %s, due %s", order.ErrInsufficientPayment,
			order.FormatMoney(c.format.Currency, amount), order.FormatMoney(c.format.Currency, total))
	}
	c.current = nil
	c.state = NoActiveOrder
	return amount.Sub(total), nil
}

// Total returns the pre-tax total of the current order, zero when none.
func (c *Cashier) Total() decimal.Decimal {
	if c.current == nil {
		return decimal.Zero
	}
	return c.current.Total()
}

// Items returns the lines of the current order.
func (c *Cashier) Items() []order.LineItem {
	if c.current == nil {
		return nil
	}
	return c.current.Items()
}

// Render returns the display rows of the current order.
func (c *Cashier) Render() []string {
	if c.current == nil {
		return nil
	}
	return c.current.Render(c.format.Currency)
}

// View snapshots the current order.
func (c *Cashier) View() View {
	return View{State: c.state, Items: c.Items(), Lines: c.Render(), Total: c.Total()}
}
