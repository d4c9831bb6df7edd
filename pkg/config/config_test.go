package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafepos/pkg/order"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"CAFE_ADDR", "CAFE_TAX_RATE", "CAFE_CURRENCY", "CAFE_SESSION_TTL", "CAFE_CASHIERS", "CAFE_TLS_CERT", "CAFE_TLS_KEY", "OTEL_SAMPLE_RATE"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8443", cfg.Addr)
	assert.Equal(t, "0.21", cfg.TaxRate.String())
	assert.Equal(t, "€", cfg.Currency)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.Cashiers)
	assert.Equal(t, "receipts", cfg.STANSubject)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CAFE_TAX_RATE", "0.10")
	t.Setenv("CAFE_CURRENCY", "£")
	t.Setenv("CAFE_TAX_LABEL", "IVA")
	t.Setenv("CAFE_CASHIERS", "ana:$2a$10$abc, luis:$2a$10$def")
	cfg, err := Load()
	require.NoError(t, err)

	opts := cfg.CashierOptions()
	assert.Equal(t, "£", opts.Currency)
	assert.Equal(t, "IVA", opts.TaxLabel)
	assert.Equal(t, "0.1", opts.TaxRate.String())
	assert.Equal(t, map[string]string{"ana": "$2a$10$abc", "luis": "$2a$10$def"}, cfg.Cashiers)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"CAFE_TAX_RATE":    "1.5",
		"CAFE_SESSION_TTL": "soon",
		"OTEL_SAMPLE_RATE": "2",
		"CAFE_CASHIERS":    "nohash",
		"CAFE_TLS_CERT":    "cert.pem",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateReportsTaxRate(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	cfg.TaxRate = cfg.TaxRate.Neg()
	assert.ErrorIs(t, cfg.Validate(), order.ErrInvalidTaxRate)
}
