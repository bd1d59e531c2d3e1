// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kix/internal/delivery/http/middleware"
	"kix/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all handlers and route-level middleware, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	SyncHandler      *handler.SyncHandler
	CartHandler      *handler.CartHandler
	FavoritesHandler *handler.FavoritesHandler
	ProductHandler   *handler.ProductHandler
	ReviewHandler    *handler.ReviewHandler
	PromoHandler     *handler.PromoHandler
	CheckoutHandler  *handler.CheckoutHandler
	PaymentHandler   *handler.PaymentHandler
	OrderHandler     *handler.OrderHandler
	AuthMiddleware   *middleware.AuthMiddleware
	DeviceMiddleware *middleware.DeviceMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware
	device := r.params.DeviceMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. The device header is optional here; when present, a
	// sign-in triggers the device's guest-state merge.
	authGroup := e.Group("/auth", device.AttachDevice)
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/federated", r.params.UserHandler.FederatedLogin)
		authGroup.POST("/logout", r.params.UserHandler.Logout, auth.OptionalAuthenticate)
	}

	// Session sync: reconciles a device's identity out of band.
	e.POST("/session/sync", r.params.SyncHandler.Sync, device.RequireDevice, auth.OptionalAuthenticate)

	// Catalog browsing is public.
	e.GET("/products", r.params.ProductHandler.ListProducts)
	e.GET("/products/:productID", r.params.ProductHandler.GetProduct)
	e.GET("/products/:productID/reviews", r.params.ReviewHandler.ListProductReviews)

	// Session-scoped routes serve guests and signed-in shoppers alike.
	cartGroup := e.Group("/cart", device.RequireDevice, auth.OptionalAuthenticate)
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.DELETE("", r.params.CartHandler.ClearCart)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PUT("/items", r.params.CartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:productID", r.params.CartHandler.RemoveItem)
	}

	favoritesGroup := e.Group("/favorites", device.RequireDevice, auth.OptionalAuthenticate)
	{
		favoritesGroup.GET("", r.params.FavoritesHandler.GetFavorites)
		favoritesGroup.POST("/:productID/toggle", r.params.FavoritesHandler.ToggleFavorite)
	}

	// Promo validation prices against the session's cart.
	e.POST("/promos/validate", r.params.PromoHandler.ValidatePromo, device.RequireDevice, auth.OptionalAuthenticate)

	// Checkout and payment require a signed-in account.
	checkoutGroup := e.Group("/checkout", device.RequireDevice, auth.Authenticate)
	{
		checkoutGroup.POST("/quote", r.params.CheckoutHandler.Quote)
		checkoutGroup.POST("/orders", r.params.CheckoutHandler.PlaceOrder)
	}
	e.POST("/payments/confirm", r.params.PaymentHandler.ConfirmPayment, auth.Authenticate)

	// Account routes.
	userGroup := e.Group("/user", auth.Authenticate)
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)
		userGroup.PUT("/address", r.params.UserHandler.SaveAddress)
	}

	// Order history.
	orderGroup := e.Group("/orders", auth.Authenticate)
	{
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/:orderID", r.params.OrderHandler.GetOrder)
		orderGroup.GET("/:orderID/receipt-qr", r.params.OrderHandler.GetReceiptQR)
	}

	// Merchant routes require authentication and the "merchant" role.
	merchantGroup := e.Group("/merchant", auth.Authenticate, auth.RequireRole("merchant"))
	{
		merchantGroup.POST("/products", r.params.ProductHandler.CreateProduct)
		merchantGroup.PUT("/products/:productID", r.params.ProductHandler.UpdateProduct)
		merchantGroup.DELETE("/products/:productID", r.params.ProductHandler.DeleteProduct)

		merchantGroup.GET("/promos", r.params.PromoHandler.ListPromos)
		merchantGroup.POST("/promos", r.params.PromoHandler.CreatePromo)
		merchantGroup.PUT("/promos/:promoID", r.params.PromoHandler.UpdatePromo)
		merchantGroup.DELETE("/promos/:promoID", r.params.PromoHandler.DeletePromo)

		merchantGroup.PUT("/orders/:orderID/status", r.params.OrderHandler.UpdateOrderStatus)
	}

	// Authenticated review management.
	reviewGroup := e.Group("/reviews", auth.Authenticate)
	{
		reviewGroup.POST("", r.params.ReviewHandler.CreateReview)
		reviewGroup.PUT("/:reviewID", r.params.ReviewHandler.UpdateReview)
		reviewGroup.DELETE("/:reviewID", r.params.ReviewHandler.DeleteReview)
	}
}
