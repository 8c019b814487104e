package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vtrao/cheetah/internal/repository"
	"github.com/vtrao/cheetah/pkg/model"
	"github.com/vtrao/cheetah/pkg/response"
	"go.uber.org/zap"
)

// ListIdeas returns all ideas, newest first
func (h *Handler) ListIdeas(c *gin.Context) {
	ideas, err := h.Store.ListIdeas(c.Request.Context())
	if err != nil {
		h.Logger.Error("list_ideas: failed to fetch",
			zap.Error(err),
		)
		response.InternalError(c, "failed to fetch ideas")
		return
	}

	response.OK(c, ideas)
}

// CreateIdea inserts a new idea and returns it with its assigned id
func (h *Handler) CreateIdea(c *gin.Context) {
	var req model.CreateIdeaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	idea, err := h.Store.CreateIdea(c.Request.Context(), req.Content)
	if err != nil {
		h.Logger.Error("create_idea: failed to insert",
			zap.Error(err),
		)
		response.InternalError(c, "failed to add idea")
		return
	}

	h.Logger.Info("create_idea: idea created",
		zap.Int64("idea_id", idea.ID),
	)

	response.Created(c, idea)
}

// GetIdea returns a single idea by id
func (h *Handler) GetIdea(c *gin.Context) {
	idStr := c.Param("idea_id")
	ideaID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid idea_id format")
		return
	}

	idea, err := h.Store.GetIdeaByID(c.Request.Context(), ideaID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "idea not found")
			return
		}
		h.Logger.Error("get_idea: failed to fetch",
			zap.Int64("idea_id", ideaID),
			zap.Error(err),
		)
		response.InternalError(c, "failed to fetch idea")
		return
	}

	response.OK(c, idea)
}
