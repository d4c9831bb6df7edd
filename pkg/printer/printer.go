// Package printer queues completed receipts for a receipt printer.
package printer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cafepos/pkg/logger"
	"cafepos/pkg/order"
)

// Job is one receipt to print.
type Job struct {
	ID       string          `json:"id"`
	Terminal string          `json:"terminal"`
	Cashier  string          `json:"cashier"`
	Text     string          `json:"text"`
	Total    decimal.Decimal `json:"total"`
	Tax      decimal.Decimal `json:"tax"`
	IssuedAt time.Time       `json:"issued_at"`
}

// NewJob wraps a receipt issued at terminal by cashier.
func NewJob(terminal, cashier string, r order.Receipt) Job {
	return Job{
		ID:       uuid.NewString(),
		Terminal: terminal,
		Cashier:  cashier,
		Text:     r.Text,
		Total:    r.Total,
		Tax:      r.Tax,
		IssuedAt: r.IssuedAt,
	}
}

// Encode serialises j for the wire.
func Encode(j Job) ([]byte, error) {
	return json.Marshal(j)
}

// Decode parses a wire message.
func Decode(raw []byte) (Job, error) {
	var j Job
	if err := json.Unmarshal(raw, &j); err != nil {
		return Job{}, fmt.Errorf("decode print job: %w", err)
	}
	if j.ID == "" || j.Text == "" {
		return Job{}, fmt.Errorf("decode print job: missing id or text")
	}
	return j, nil
}

// Queue accepts receipts for printing.
type Queue interface {
	Print(ctx context.Context, j Job) error
}

// LogQueue writes receipts to the log instead of a printer.
type LogQueue struct {
	Log *logger.Logger
}

// Print logs the receipt.
func (q LogQueue) Print(ctx context.Context, j Job) error {
	q.Log.Info(ctx, "receipt", "job", j.ID, "terminal", j.Terminal, "total", j.Total.StringFixed(2), "text", j.Text)
	return nil
}

var _ Queue = LogQueue{}
