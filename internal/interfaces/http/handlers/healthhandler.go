package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamboard/teamboard/internal/shared/logger"
	"github.com/teamboard/teamboard/internal/shared/utils"
)

const healthCheckTimeout = 2 * time.Second

type databasePinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     databasePinger
	logger logger.Interface
}

func NewHealthHandler(db databasePinger, logger logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}
