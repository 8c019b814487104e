package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vtrao/cheetah/pkg/model"
)

func (r *Repository) ListIdeas(ctx context.Context) ([]model.Idea, error) {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	const q = `SELECT id, content, created_at FROM ideas ORDER BY created_at DESC`
	rows, err := conn.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query ideas: %w", err)
	}
	defer rows.Close()

	out := []model.Idea{}
	for rows.Next() {
		var idea model.Idea
		if err := rows.Scan(&idea.ID, &idea.Content, &idea.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		out = append(out, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ideas: %w", err)
	}
	return out, nil
}

func (r *Repository) CreateIdea(ctx context.Context, content string) (*model.Idea, error) {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	const q = `INSERT INTO ideas (content, created_at) VALUES ($1, $2) RETURNING id, created_at`
	idea := model.Idea{Content: content}
	row := conn.QueryRow(ctx, q, content, time.Now().UTC())
	if err := row.Scan(&idea.ID, &idea.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert idea: %w", err)
	}
	return &idea, nil
}

func (r *Repository) GetIdeaByID(ctx context.Context, ideaID int64) (*model.Idea, error) {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	const q = `SELECT id, content, created_at FROM ideas WHERE id = $1`
	var idea model.Idea
	row := conn.QueryRow(ctx, q, ideaID)
	if err := row.Scan(&idea.ID, &idea.Content, &idea.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query idea %d: %w", ideaID, err)
	}
	return &idea, nil
}
