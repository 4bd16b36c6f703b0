// Package database owns the Postgres connection backing artifact history.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	maxOpenConns    = 10
	maxIdleConns    = 4
	connMaxLifetime = 30 * time.Minute
	connectTimeout  = 5 * time.Second
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

func (c Config) dsn() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Database)
}

// Postgres is the shared connection pool. History is an optional feature, so
// callers get a nil Postgres when the database is not configured.
type Postgres struct {
	db     *sql.DB
	logger *zap.Logger
}

// Connect opens the pool and verifies the database is reachable before
// returning it.
func Connect(ctx context.Context, cfg Config, logger *zap.Logger) (*Postgres, error) {
	db, err := sql.Open("postgres", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres unreachable: %w", err)
	}

	logger.Info("Postgres connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
	)

	return &Postgres{db: db, logger: logger}, nil
}

func (p *Postgres) DB() *sql.DB {
	return p.db
}

// Ping reports pool liveness. The health endpoint uses it when history is
// configured.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Postgres) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}
