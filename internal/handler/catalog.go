package handler

import (
	"net/http"

	"seafresh-be/internal/product"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListProducts(c *gin.Context) {
	search := c.Query("q")
	if search == "" {
		search = c.Query("search")
	}

	products, err := h.Products.List(c.Request.Context(), c.Query("category"), search)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) ListCategories(c *gin.Context) {
	list, err := h.Categories.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) ListSellerProducts(c *gin.Context) {
	products, err := h.Products.ListBySeller(c.Request.Context(), identity(c).SubjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req product.CreateProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	p, err := h.Products.Create(c.Request.Context(), identity(c).SubjectID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.Products.Delete(c.Request.Context(), identity(c).SubjectID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

type stockRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) AdjustStock(c *gin.Context) {
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	stock, err := h.Products.AdjustStock(c.Request.Context(), identity(c).SubjectID, c.Param("id"), req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "stock": stock})
}
