// Package console runs the till as a line-oriented register on a terminal.
//
// Commands:
//
//	<index> <quantity>  add a menu item (index as listed)
//	r <line>            remove an order line (line as listed)
//	l                   list the current order
//	c                   complete the order and print the receipt
//	p <amount>          pay cash for the completed order
//	n                   start a new order
//	m                   show the menu
//	0, q                quit
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cafepos/pkg/cashier"
	"cafepos/pkg/logger"
	"cafepos/pkg/order"
	"cafepos/pkg/printer"
)

var errUnknownCommand = errors.New("unknown command")

// Register drives one Cashier from text input.
type Register struct {
	Cashier *cashier.Cashier
	In      io.Reader
	Out     io.Writer
	// Printer receives completed receipts. Nil prints them to Out only.
	Printer printer.Queue
	Name    string
	Log     *logger.Logger
}

// Run reads commands until quit, EOF or ctx is done.
func (r *Register) Run(ctx context.Context) error {
	if r.Log == nil {
		r.Log = logger.Nop()
	}
	r.menu()
	fmt.Fprintln(r.Out, `Enter "<item> <quantity>", r <line>, l, c, p <amount>, n, m, or 0 to quit.`)

	sc := bufio.NewScanner(r.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(r.Out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(r.Out)
			return sc.Err()
		}
		quit, err := r.exec(ctx, strings.Fields(sc.Text()))
		if err != nil {
			fmt.Fprintf(r.Out, "error: %s\n", describe(err))
		}
		if quit {
			return nil
		}
	}
}

func (r *Register) exec(ctx context.Context, args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}
	switch cmd := strings.ToLower(args[0]); cmd {
	case "0", "q", "quit":
		return true, nil
	case "m":
		r.menu()
	case "l":
		r.list()
	case "n":
		r.Cashier.StartOrder()
		fmt.Fprintln(r.Out, "New order started.")
	case "r":
		line, err := argInt(args, 1)
		if err != nil {
			return false, err
		}
		li, err := r.Cashier.RemoveItem(line - 1)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(r.Out, "Removed %s x %d.\n", li.Name, li.Quantity)
		r.list()
	case "c":
		rec, err := r.Cashier.Complete()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(r.Out, rec.Text)
		r.print(ctx, rec)
	case "p":
		if len(args) < 2 {
			return false, fmt.Errorf("%w: missing amount", order.ErrInvalidAmount)
		}
		amount, err := cashier.ParseAmount(args[1])
		if err != nil {
			return false, err
		}
		change, err := r.Cashier.SettlePayment(amount)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(r.Out, "Change: %s\n", order.FormatMoney(r.Cashier.Currency(), change))
	default:
		idx, err := strconv.Atoi(cmd)
		if err != nil {
			return false, fmt.Errorf("%w %q", errUnknownCommand, args[0])
		}
		qty := ""
		if len(args) > 1 {
			qty = args[1]
		}
		if err := r.Cashier.TakeOrderInput(idx-1, qty); err != nil {
			return false, err
		}
		r.list()
	}
	return false, nil
}

func (r *Register) menu() {
	fmt.Fprintln(r.Out, "Menu:")
	for _, l := range r.Cashier.ListMenu() {
		fmt.Fprintln(r.Out, l)
	}
}

func (r *Register) list() {
	lines := r.Cashier.Render()
	if len(lines) == 0 {
		fmt.Fprintln(r.Out, "Order is empty.")
		return
	}
	for i, l := range lines {
		fmt.Fprintf(r.Out, "%d. %s\n", i+1, l)
	}
	fmt.Fprintf(r.Out, "Total: %s\n", order.FormatMoney(r.Cashier.Currency(), r.Cashier.Total()))
}

func (r *Register) print(ctx context.Context, rec order.Receipt) {
	if r.Printer == nil {
		return
	}
	job := printer.NewJob("console", r.Name, rec)
	if err := r.Printer.Print(ctx, job); err != nil {
		r.Log.Error(ctx, "queue receipt", "job", job.ID, "error", err)
		fmt.Fprintln(r.Out, "warning: receipt not sent to printer")
	}
}

func argInt(args []string, i int) (int, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("%w: missing line number", order.ErrIndexOutOfRange)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", order.ErrIndexOutOfRange, args[i])
	}
	return n, nil
}

// describe turns engine errors into register messages.
func describe(err error) string {
	switch {
	case errors.Is(err, order.ErrIndexOutOfRange):
		return "no such item"
	case errors.Is(err, order.ErrInvalidQuantity):
		return "quantity must be a positive whole number"
	case errors.Is(err, order.ErrEmptyOrder):
		return "order is empty"
	case errors.Is(err, order.ErrNoActiveOrder):
		return "no active order"
	case errors.Is(err, order.ErrNotCompleted):
		return "complete the order before paying"
	case errors.Is(err, order.ErrInsufficientPayment):
		return "insufficient payment"
	case errors.Is(err, order.ErrInvalidAmount):
		return "amount must be a number"
	default:
		return err.Error()
	}
}
