package handler

import (
	"context"
	"net/http"
	"time"

	"seafresh-be/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

func (h *Handler) Health(c *gin.Context) {
	status, code, database := "ok", http.StatusOK, "up"

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()

		if err := h.DB.PingContext(ctx); err != nil {
			logger.FromCtx(ctx).Warn("database ping failed", zap.Error(err))
			status, code, database = "degraded", http.StatusServiceUnavailable, "down"
		}
	}

	c.JSON(code, gin.H{
		"status":   status,
		"database": database,
		"metrics":  h.Metrics.Snapshot(),
	})
}
