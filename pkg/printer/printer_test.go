package printer

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafepos/pkg/logger"
	"cafepos/pkg/order"
)

func TestNewJobCarriesReceipt(t *testing.T) {
	issued := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	r := order.Receipt{
		Text:     "COFFEE PALACE\nTOTAL: €4.20",
		Total:    decimal.RequireFromString("4.20"),
		Tax:      decimal.RequireFromString("0.88"),
		IssuedAt: issued,
	}
	j := NewJob("till-1", "ana", r)
	assert.NotEmpty(t, j.ID)

	raw, err := Encode(j)
	require.NoError(t, err)
	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, j.Text, got.Text)
	assert.Equal(t, "till-1", got.Terminal)
	assert.True(t, got.Total.Equal(j.Total))
	assert.True(t, got.IssuedAt.Equal(issued))
}

func TestDecodeRejectsIncompleteJobs(t *testing.T) {
	for _, raw := range []string{`not json`, `{}`, `{"id":"x"}`} {
		_, err := Decode([]byte(raw))
		assert.Error(t, err, raw)
	}
}

func TestLogQueue(t *testing.T) {
	var buf bytes.Buffer
	q := LogQueue{Log: logger.New(&buf, logger.LevelInfo, "test", nil)}
	j := Job{ID: "job-1", Terminal: "till-1", Text: "TOTAL: €1.50", Total: decimal.RequireFromString("1.5")}
	require.NoError(t, q.Print(context.Background(), j))
	assert.Contains(t, buf.String(), `"job":"job-1"`)
	assert.Contains(t, buf.String(), `"total":"1.50"`)
}
