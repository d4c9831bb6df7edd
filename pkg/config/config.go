// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cafepos/pkg/cashier"
	"cafepos/pkg/order"
)

// Config holds everything the binaries need to wire themselves.
type Config struct {
	Addr    string
	TLSCert string
	TLSKey  string

	DatabaseURL string
	RedisAddr   string
	SessionTTL  time.Duration

	OTELHost      string
	TraceSampling float64
	LogLevel      string

	Currency string
	TaxRate  decimal.Decimal
	TaxLabel string
	ShopName string

	// Cashiers maps usernames to bcrypt hashes. Empty accepts any username.
	Cashiers map[string]string

	STANClusterID string
	STANClientID  string
	NATSURL       string
	STANSubject   string
}

// Load reads Config from the environment, applying defaults.
func Load() (Config, error) {
	var cfg Config
	var err error

	cfg.Addr = getEnv("CAFE_ADDR", ":8443")
	cfg.TLSCert = os.Getenv("CAFE_TLS_CERT")
	cfg.TLSKey = os.Getenv("CAFE_TLS_KEY")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.OTELHost = os.Getenv("OTEL_HOST")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.Currency = getEnv("CAFE_CURRENCY", order.DefaultReceiptFormat.Currency)
	cfg.TaxLabel = getEnv("CAFE_TAX_LABEL", order.DefaultReceiptFormat.TaxLabel)
	cfg.ShopName = getEnv("CAFE_SHOP_NAME", order.DefaultReceiptFormat.ShopName)
	cfg.STANClusterID = getEnv("STAN_CLUSTER_ID", "cafe-cluster")
	cfg.STANClientID = os.Getenv("STAN_CLIENT_ID")
	cfg.NATSURL = os.Getenv("NATS_URL")
	cfg.STANSubject = getEnv("STAN_SUBJECT", "receipts")

	if cfg.SessionTTL, err = time.ParseDuration(getEnv("CAFE_SESSION_TTL", "1h")); err != nil {
		return Config{}, fmt.Errorf("CAFE_SESSION_TTL: %w", err)
	}
	if cfg.TraceSampling, err = strconv.ParseFloat(getEnv("OTEL_SAMPLE_RATE", "1.0"), 64); err != nil {
		return Config{}, fmt.Errorf("OTEL_SAMPLE_RATE: %w", err)
	}
	if cfg.TaxRate, err = decimal.NewFromString(getEnv("CAFE_TAX_RATE", "0.21")); err != nil {
		return Config{}, fmt.Errorf("CAFE_TAX_RATE: %w", err)
	}
	if cfg.Cashiers, err = ParseCashiers(os.Getenv("CAFE_CASHIERS")); err != nil {
		return Config{}, fmt.Errorf("CAFE_CASHIERS: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges and paired settings.
func (c Config) Validate() error {
	var errs []error
	if err := order.ValidateTaxRate(c.TaxRate); err != nil {
		errs = append(errs, err)
	}
	if c.TraceSampling < 0 || c.TraceSampling > 1 {
		errs = append(errs, fmt.Errorf("trace sampling %v outside [0, 1]", c.TraceSampling))
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		errs = append(errs, errors.New("CAFE_TLS_CERT and CAFE_TLS_KEY must be set together"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("session ttl %s must be positive", c.SessionTTL))
	}
	return errors.Join(errs...)
}

// CashierOptions returns the engine options described by c.
func (c Config) CashierOptions() cashier.Options {
	return cashier.Options{
		Currency: c.Currency,
		TaxRate:  c.TaxRate,
		TaxLabel: c.TaxLabel,
		ShopName: c.ShopName,
	}
}

// ParseCashiers parses "name:hash,name:hash".
func ParseCashiers(s string) (map[string]string, error) {
	out := make(map[string]string)
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, pair := range strings.Split(s, ",") {
		name, hash, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || name == "" || hash == "" {
			return nil, fmt.Errorf("malformed entry %q, want name:hash", pair)
		}
		out[name] = hash
	}
	return out, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
