// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/MaulikI8/imperialwatch/internal/delivery/http/middleware"
	"github.com/MaulikI8/imperialwatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	AccountHandler  *handler.AccountHandler
	CheckoutHandler *handler.CheckoutHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	accountHandler  *handler.AccountHandler
	checkoutHandler *handler.CheckoutHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		accountHandler:  params.AccountHandler,
		checkoutHandler: params.CheckoutHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		// Public catalog routes
		api.GET("/products", r.catalogHandler.ListProducts)
		api.GET("/products/:id", r.catalogHandler.GetProduct)
		api.GET("/categories", r.catalogHandler.Categories)
		api.GET("/brands", r.catalogHandler.Brands)
		api.GET("/search", r.catalogHandler.Search)

		// Auth routes
		api.POST("/auth/register", r.accountHandler.Register)
		api.POST("/auth/login", r.accountHandler.Login)

		// Checkout routes
		api.POST("/create-payment-intent", r.checkoutHandler.CreatePaymentIntent)
		api.POST("/confirm-payment", r.checkoutHandler.ConfirmPayment)
		api.GET("/orders/:id", r.checkoutHandler.GetOrder)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)         // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole("admin")) // Then, check for the role
	{
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.GET("/customers", r.adminHandler.ListCustomers)
		adminGroup.PUT("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
	}
}
