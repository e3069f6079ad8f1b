// Package duckdb opens an embedded sandbox database so the playground can run
// from a single local file with no Postgres server. DuckDB's SQL dialect is
// close enough to Postgres that the seeded e-commerce queries run unchanged.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
)

type DBConfig struct {
	// Path to the database file. Empty opens an in-memory database, which
	// only makes sense for tests since nothing would be seeded.
	Path         string
	MaxOpenConns int
}

func Open(ctx context.Context, cfg DBConfig) (*sql.DB, error) {
	db, err := sql.Open("duckdb", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb sandbox: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping duckdb sandbox: %w", err)
	}

	return db, nil
}
