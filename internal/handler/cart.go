package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Weight    string `json:"weight"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) GetCart(c *gin.Context) {
	summary, err := h.Carts.Summary(c.Request.Context(), identity(c).SubjectID, c.Query("coupon"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) AddCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.Carts.AddItem(c.Request.Context(), identity(c).SubjectID, req.ProductID, req.Quantity, req.Weight)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	cart, err := h.Carts.UpdateQuantity(c.Request.Context(), identity(c).SubjectID, c.Param("productId"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	cart, err := h.Carts.RemoveItem(c.Request.Context(), identity(c).SubjectID, c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.Carts.Clear(c.Request.Context(), identity(c).SubjectID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
