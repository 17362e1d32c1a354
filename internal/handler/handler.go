package handler

import (
	"context"

	"seafresh-be/internal/address"
	"seafresh-be/internal/admin"
	"seafresh-be/internal/auth"
	"seafresh-be/internal/cart"
	"seafresh-be/internal/category"
	"seafresh-be/internal/dashboard"
	"seafresh-be/internal/logger"
	"seafresh-be/internal/metrics"
	"seafresh-be/internal/middleware"
	"seafresh-be/internal/order"
	"seafresh-be/internal/product"
	"seafresh-be/internal/seller"
	"seafresh-be/internal/user"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	Users      user.Service
	Sellers    seller.Service
	Admins     admin.Service
	Addresses  address.Service
	Products   product.Service
	Categories category.Service
	Carts      cart.Service
	Orders     order.Service
	Dashboard  dashboard.Service

	Tokens  *auth.TokenService
	Metrics *metrics.Registry
	DB      Pinger

	SecureCookies bool
}

// Router builds the HTTP surface. extra runs after authentication so it can
// see the caller's identity (rate limiting keys on it).
func (h *Handler) Router(cors gin.HandlerFunc, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestID(), logger.AccessLog())
	if cors != nil {
		r.Use(cors)
	}
	r.Use(middleware.Authenticate(h.Tokens))
	r.Use(extra...)

	r.GET("/health", h.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.RegisterCustomer)
		authGroup.POST("/login", h.LoginCustomer)
		authGroup.POST("/seller/register", h.RegisterSeller)
		authGroup.POST("/seller/login", h.LoginSeller)
		authGroup.POST("/admin/login", h.LoginAdmin)
	}

	api.GET("/products", h.ListProducts)
	api.GET("/categories", h.ListCategories)

	customer := api.Group("", middleware.RequireRole(auth.RoleCustomer))
	{
		customer.GET("/cart", h.GetCart)
		customer.POST("/cart/items", h.AddCartItem)
		customer.PATCH("/cart/items/:productId", h.UpdateCartItem)
		customer.DELETE("/cart/items/:productId", h.RemoveCartItem)
		customer.DELETE("/cart", h.ClearCart)

		customer.POST("/orders", h.PlaceOrder)
		customer.GET("/orders", h.ListMyOrders)
		customer.GET("/orders/:id", h.GetMyOrder)
		customer.GET("/customer/orders", h.ListMyOrders)
		customer.GET("/customer/orders/:id", h.GetMyOrder)

		customer.GET("/customer/profile", h.Profile)
		customer.POST("/customer/address", h.CreateAddress)
		customer.GET("/customer/address", h.ListAddresses)
	}

	sellerGroup := api.Group("/seller", middleware.RequireRole(auth.RoleSeller))
	{
		sellerGroup.GET("/products", h.ListSellerProducts)
		sellerGroup.POST("/products", h.CreateProduct)
		sellerGroup.DELETE("/products/:id", h.DeleteProduct)
		sellerGroup.PATCH("/products/:id/stock", h.AdjustStock)
		sellerGroup.GET("/orders", h.ListSellerOrders)
		sellerGroup.PATCH("/orders/:id/status", h.UpdateOrderStatus)
		sellerGroup.GET("/dashboard/stats", h.SellerStats)
	}

	adminGroup := api.Group("/admin", middleware.RequireRole(auth.RoleAdmin))
	{
		adminGroup.GET("/orders", h.ListAllOrders)
		adminGroup.GET("/orders/export", h.ExportOrders)
		adminGroup.PATCH("/orders/:id/status", h.UpdateOrderStatus)
		adminGroup.GET("/customers", h.ListCustomers)
		adminGroup.GET("/dashboard/stats", h.AdminStats)
	}

	return r
}
