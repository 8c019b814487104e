package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vtrao/cheetah/pkg/model"
	"github.com/vtrao/cheetah/pkg/response"
	"go.uber.org/zap"
)

// Health probes the store but always reports healthy. A down database must
// not flip this endpoint to non-2xx, otherwise the orchestrator restarts the
// pod in a loop while the store recovers.
func (h *Handler) Health(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		h.Logger.Error("health: database ping failed",
			zap.Error(err),
		)
	}

	response.OK(c, model.HealthRes{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   h.Version,
	})
}
