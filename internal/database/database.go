package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Conn is the subset of *pgx.Conn the repositories use.
type Conn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// DialFunc opens a single connection to the store.
type DialFunc func(ctx context.Context, dsn string) (Conn, error)

func pgxDial(ctx context.Context, dsn string) (Conn, error) {
	return pgx.Connect(ctx, dsn)
}

// Connector opens a fresh connection per call, retrying transient failures
// with a flat delay. Callers own the returned connection and must Close it.
type Connector struct {
	dsn      string
	attempts int
	delay    time.Duration
	dial     DialFunc
	logger   *zap.Logger
}

func NewConnector(dsn string, attempts int, delay time.Duration, logger *zap.Logger) *Connector {
	return &Connector{
		dsn:      dsn,
		attempts: attempts,
		delay:    delay,
		dial:     pgxDial,
		logger:   logger,
	}
}

// Connect dials the store, retrying up to the configured bound with a fixed
// delay between attempts. No backoff, no jitter.
func (c *Connector) Connect(ctx context.Context) (Conn, error) {
	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		conn, err := c.dial(ctx, c.dsn)
		if err == nil {
			return conn, nil
		}
		lastErr = err

		if attempt == c.attempts {
			break
		}
		c.logger.Warn("database connection attempt failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", c.delay),
			zap.Error(err),
		)
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("connect to database: %w", ctx.Err())
		}
	}
	c.logger.Error("failed to connect to database, attempts exhausted",
		zap.Int("attempts", c.attempts),
		zap.Error(lastErr),
	)
	return nil, fmt.Errorf("connect to database after %d attempts: %w", c.attempts, lastErr)
}
