package repository

import (
	"context"
	"errors"

	"github.com/vtrao/cheetah/internal/database"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Repository runs each operation on its own connection. Expects a single
// table, created out of band:
//
//	CREATE TABLE ideas (
//	    id         BIGSERIAL PRIMARY KEY,
//	    content    TEXT NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type Repository struct {
	db *database.Connector
}

func NewRepository(db *database.Connector) *Repository {
	return &Repository{db: db}
}

// Ping acquires a connection and releases it immediately. Used by the health
// check to probe store reachability.
func (r *Repository) Ping(ctx context.Context) error {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return err
	}
	return conn.Close(ctx)
}
