package handler

import (
	"net/http"

	"seafresh-be/internal/address"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Profile(c *gin.Context) {
	p, err := h.Users.Profile(c.Request.Context(), identity(c).SubjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) CreateAddress(c *gin.Context) {
	var req address.CreateAddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	a, err := h.Addresses.Create(c.Request.Context(), identity(c).SubjectID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) ListAddresses(c *gin.Context) {
	list, err := h.Addresses.List(c.Request.Context(), identity(c).SubjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
