// internal/common/database/postgres.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"inquiry-workers/internal/common/config"

	_ "github.com/lib/pq"
)

// DecisionAuditSchema creates the decision audit table. Only scores and
// decisions are stored; submissions never are.
const DecisionAuditSchema = `
CREATE TABLE IF NOT EXISTS decision_audit (
	id            UUID PRIMARY KEY,
	company_slug  TEXT        NOT NULL,
	decision      TEXT        NOT NULL,
	total_score   INTEGER     NOT NULL,
	percentage    INTEGER     NOT NULL,
	breakdown     JSONB       NOT NULL,
	process_key   BIGINT,
	recorded_at   TIMESTAMPTZ NOT NULL
)`

// PostgresClient wraps the SQL database connection
type PostgresClient struct {
	DB *sql.DB
}

// NewPostgres creates a new PostgreSQL client
func NewPostgres(cfg config.PostgresConfig) (*PostgresClient, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &PostgresClient{DB: db}, nil
}

// Ping tests the database connection
func (c *PostgresClient) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// EnsureSchema creates the tables the workers write to.
func (c *PostgresClient) EnsureSchema(ctx context.Context) error {
	if _, err := c.DB.ExecContext(ctx, DecisionAuditSchema); err != nil {
		return fmt.Errorf("failed to create decision_audit table: %w", err)
	}
	return nil
}

// Close closes the database connection
func (c *PostgresClient) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
