package handler

import (
	"context"

	"github.com/vtrao/cheetah/pkg/model"
	"go.uber.org/zap"
)

// IdeaStore is the persistence surface the handlers depend on.
// *repository.Repository implements it.
type IdeaStore interface {
	Ping(ctx context.Context) error
	ListIdeas(ctx context.Context) ([]model.Idea, error)
	CreateIdea(ctx context.Context, content string) (*model.Idea, error)
	GetIdeaByID(ctx context.Context, ideaID int64) (*model.Idea, error)
}

type Handler struct {
	Logger  *zap.Logger
	Store   IdeaStore
	Version string
}

func NewHandler(logger *zap.Logger, store IdeaStore, version string) *Handler {
	return &Handler{
		Logger:  logger,
		Store:   store,
		Version: version,
	}
}
