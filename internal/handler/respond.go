package handler

import (
	"errors"
	"net/http"

	"seafresh-be/internal/address"
	"seafresh-be/internal/admin"
	"seafresh-be/internal/auth"
	"seafresh-be/internal/cart"
	"seafresh-be/internal/logger"
	"seafresh-be/internal/order"
	"seafresh-be/internal/product"
	"seafresh-be/internal/seller"
	"seafresh-be/internal/user"
	"seafresh-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{user.ErrMissingFields, http.StatusBadRequest},
	{user.ErrInvalidEmail, http.StatusBadRequest},
	{user.ErrInvalidPhone, http.StatusBadRequest},
	{seller.ErrMissingFields, http.StatusBadRequest},
	{seller.ErrInvalidEmail, http.StatusBadRequest},
	{seller.ErrInvalidPhone, http.StatusBadRequest},
	{address.ErrMissingFields, http.StatusBadRequest},
	{address.ErrInvalidPhone, http.StatusBadRequest},
	{product.ErrMissingFields, http.StatusBadRequest},
	{product.ErrInvalidCategory, http.StatusBadRequest},
	{product.ErrInvalidPrice, http.StatusBadRequest},
	{product.ErrInvalidStock, http.StatusBadRequest},
	{product.ErrInvalidRating, http.StatusBadRequest},
	{product.ErrInvalidDiscount, http.StatusBadRequest},
	{product.ErrInvalidDelta, http.StatusBadRequest},
	{cart.ErrInvalidQuantity, http.StatusBadRequest},
	{cart.ErrMissingProductID, http.StatusBadRequest},
	{order.ErrMissingAddress, http.StatusBadRequest},
	{order.ErrEmptyOrder, http.StatusBadRequest},
	{order.ErrInvalidPaymentMethod, http.StatusBadRequest},
	{order.ErrInvalidStatus, http.StatusBadRequest},

	{user.ErrInvalidCredentials, http.StatusUnauthorized},
	{seller.ErrInvalidCredentials, http.StatusUnauthorized},
	{admin.ErrInvalidCredentials, http.StatusUnauthorized},

	{address.ErrForbidden, http.StatusForbidden},
	{product.ErrForbidden, http.StatusForbidden},
	{order.ErrForbidden, http.StatusForbidden},

	{user.ErrUserNotFound, http.StatusNotFound},
	{address.ErrAddressNotFound, http.StatusNotFound},
	{product.ErrProductNotFound, http.StatusNotFound},
	{cart.ErrCartItemNotFound, http.StatusNotFound},
	{order.ErrOrderNotFound, http.StatusNotFound},

	{user.ErrEmailExists, http.StatusConflict},
	{seller.ErrEmailExists, http.StatusConflict},
	{product.ErrInsufficientStock, http.StatusConflict},
	{order.ErrInvalidTransition, http.StatusConflict},
	{order.ErrStatusConflict, http.StatusConflict},
	{cart.ErrCartBusy, http.StatusConflict},
}

func statusFor(err error) int {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// respondError hides internal failures behind a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromCtx(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "something went wrong"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// identity is only called behind RequireRole, so the identity is always present.
func identity(c *gin.Context) auth.Identity {
	id, _ := utils.IdentityFrom(c.Request.Context())
	return id
}
