package handler

import (
	"errors"
	"net/http"

	"seafresh-be/internal/admin"
	"seafresh-be/internal/auth"
	"seafresh-be/internal/seller"
	"seafresh-be/internal/user"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// setSessionCookie keeps cookie-based clients working next to bearer tokens.
func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(h.Tokens.TTL().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.LegacyCookieName, token, maxAge, "/", "", h.SecureCookies, true)
}

func (h *Handler) loginFailed(c *gin.Context, err error) {
	if errors.Is(err, user.ErrInvalidCredentials) ||
		errors.Is(err, seller.ErrInvalidCredentials) ||
		errors.Is(err, admin.ErrInvalidCredentials) {
		h.Metrics.LoginsFailed.Inc()
	}
	respondError(c, err)
}

func (h *Handler) RegisterCustomer(c *gin.Context) {
	var req user.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	token, u, err := h.Users.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": u})
}

func (h *Handler) LoginCustomer(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	token, u, err := h.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.loginFailed(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

func (h *Handler) RegisterSeller(c *gin.Context) {
	var req seller.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	s, err := h.Sellers.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"seller": s})
}

func (h *Handler) LoginSeller(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	token, s, err := h.Sellers.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.loginFailed(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "seller": s})
}

func (h *Handler) LoginAdmin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	token, a, err := h.Admins.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.loginFailed(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "admin": a})
}
