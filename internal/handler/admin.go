package handler

import (
	"fmt"
	"net/http"
	"time"

	"seafresh-be/internal/dashboard"
	"seafresh-be/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) ListAllOrders(c *gin.Context) {
	orders, err := h.Orders.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) ExportOrders(c *gin.Context) {
	orders, err := h.Orders.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", dashboard.ExportContentType)
	c.Status(http.StatusOK)

	if err := dashboard.ExportOrders(c.Writer, orders); err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to write orders export", zap.Error(err))
		_ = c.Error(err)
	}
}

func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.Dashboard.Customers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.Dashboard.AdminStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) SellerStats(c *gin.Context) {
	stats, err := h.Dashboard.SellerStats(c.Request.Context(), identity(c).SubjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
