package handler

import (
	"net/http"
	"strconv"

	"seafresh-be/internal/order"

	"github.com/gin-gonic/gin"
)

func (h *Handler) PlaceOrder(c *gin.Context) {
	var req order.PlaceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	res, err := h.Orders.Place(c.Request.Context(), identity(c).SubjectID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) ListMyOrders(c *gin.Context) {
	orders, err := h.Orders.ListMine(c.Request.Context(), identity(c).SubjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetMyOrder(c *gin.Context) {
	o, err := h.Orders.GetMine(c.Request.Context(), identity(c).SubjectID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) ListSellerOrders(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	orders, err := h.Orders.ListForSeller(c.Request.Context(), identity(c).SubjectID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus serves both the seller and admin routes; the order
// service decides what each role may touch.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	o, err := h.Orders.UpdateStatus(c.Request.Context(), identity(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}
