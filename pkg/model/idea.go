package model

import "time"

type Idea struct {
	ID        int64     `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateIdeaReq struct {
	Content string `json:"content" binding:"required"`
}

type HealthRes struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
