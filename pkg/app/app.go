// Package app wires configuration to concrete backends for the binaries.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"cafepos/pkg/config"
	"cafepos/pkg/logger"
	"cafepos/pkg/order"
	"cafepos/pkg/order/memory"
	pg "cafepos/pkg/order/postgres"
	"cafepos/pkg/printer"
	"cafepos/pkg/session"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenCatalog loads the menu. With DATABASE_URL set the products table is
// created and seeded with the default menu when empty; otherwise the default
// menu is served from memory.
func OpenCatalog(ctx context.Context, cfg config.Config, log *logger.Logger) (*order.Catalog, io.Closer, error) {
	if cfg.DatabaseURL == "" {
		log.Info(ctx, "catalog source", "backend", "memory")
		c, err := order.LoadCatalog(ctx, memory.Default())
		return c, nopCloser{}, err
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("db connect: %w", err)
	}
	src := pg.New(db)
	if err := src.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("create table: %w", err)
	}
	n, err := src.Count(ctx)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("count products: %w", err)
	}
	if n == 0 {
		if err := Seed(ctx, src); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info(ctx, "seeded default menu")
	}
	c, err := order.LoadCatalog(ctx, src)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	log.Info(ctx, "catalog source", "backend", "postgres", "products", c.Len())
	return c, db, nil
}

// Seed replaces the stored menu with the default one.
func Seed(ctx context.Context, src *pg.Source) error {
	products, err := memory.Default().Products(ctx)
	if err != nil {
		return err
	}
	if err := src.Replace(ctx, products); err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	return nil
}

// OpenSessions returns a Redis store when REDIS_ADDR is set, otherwise an
// in-process one.
func OpenSessions(ctx context.Context, cfg config.Config, log *logger.Logger) (session.Store, io.Closer, error) {
	if cfg.RedisAddr == "" {
		log.Info(ctx, "session store", "backend", "memory")
		return session.NewMemoryStore(), nopCloser{}, nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Info(ctx, "session store", "backend", "redis", "addr", cfg.RedisAddr)
	return session.NewRedisStore(client, cfg.SessionTTL), client, nil
}

// OpenPrinter returns a NATS Streaming queue when NATS_URL is set, otherwise
// receipts are only logged.
func OpenPrinter(ctx context.Context, cfg config.Config, log *logger.Logger) (printer.Queue, io.Closer, error) {
	if cfg.NATSURL == "" {
		log.Info(ctx, "receipt printer", "backend", "log")
		return printer.LogQueue{Log: log}, nopCloser{}, nil
	}
	q, err := printer.Dial(cfg.STANClusterID, cfg.STANClientID, cfg.NATSURL, cfg.STANSubject)
	if err != nil {
		return nil, nil, err
	}
	log.Info(ctx, "receipt printer", "backend", "stan", "subject", cfg.STANSubject)
	return q, q, nil
}
