// Package postgres loads the product catalog from PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"cafepos/pkg/order"
)

// Schema creates the products table. Position defines menu order.
const Schema = `CREATE TABLE IF NOT EXISTS products (
  position INT PRIMARY KEY,
  name TEXT NOT NULL,
  price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
  stock INT NOT NULL DEFAULT 0 CHECK (stock >= 0)
)`

// Source reads products from PostgreSQL.
type Source struct {
	db *sql.DB
}

// New creates a PostgreSQL product source.
func New(db *sql.DB) *Source {
	return &Source{db: db}
}

// EnsureSchema creates the products table if it is missing.
func (s *Source) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, Schema)
	return err
}

// Products fetches all products in menu order.
func (s *Source) Products(ctx context.Context) ([]order.Product, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name,price,stock FROM products ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var products []order.Product
	for rows.Next() {
		var p order.Product
		if err := rows.Scan(&p.Name, &p.Price, &p.Stock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Replace swaps the stored menu for products inside one transaction.
func (s *Source) Replace(ctx context.Context, products []order.Product) error {
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("product %d: %w", i, err)
		}
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM products"); err != nil {
		return err
	}
	for i, p := range products {
		if _, err := tx.ExecContext(ctx, "INSERT INTO products (position,name,price,stock) VALUES ($1,$2,$3,$4)", i, p.Name, p.Price, p.Stock); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Count returns the number of stored products.
func (s *Source) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM products").Scan(&n)
	return n, err
}

var _ order.Source = (*Source)(nil)
