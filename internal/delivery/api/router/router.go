// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catalog/internal/delivery/api/middleware"
	"catalog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PasswordHandler *handler.PasswordHandler
	ProductHandler  *handler.ProductHandler
	AuthMiddleware  *middleware.AuthMiddleware
	AccessPolicy    *middleware.AccessPolicy
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	passwordHandler *handler.PasswordHandler
	productHandler  *handler.ProductHandler
	authMiddleware  *middleware.AuthMiddleware
	accessPolicy    *middleware.AccessPolicy
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		passwordHandler: params.PasswordHandler,
		productHandler:  params.ProductHandler,
		authMiddleware:  params.AuthMiddleware,
		accessPolicy:    params.AccessPolicy,
	}
}

// RegisterRoutes sets up all the API routes for the application. Every
// request, matched or not, is authenticated and then checked against the
// access policy.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.authMiddleware.Authenticate, r.accessPolicy.Enforce)

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/verify-account", r.authHandler.VerifyAccount)
		authGroup.POST("/resend-verification", r.authHandler.ResendVerification)
	}

	passwordGroup := e.Group("/password")
	{
		passwordGroup.POST("/request-reset", r.passwordHandler.RequestReset)
		passwordGroup.POST("/reset", r.passwordHandler.Reset)
	}

	productsGroup := e.Group("/products")
	{
		productsGroup.GET("/paginated", r.productHandler.ListProducts)
		productsGroup.GET("/find", r.productHandler.FindProduct)
		productsGroup.POST("/create", r.productHandler.CreateProduct)
		productsGroup.PUT("/update", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/delete", r.productHandler.DeleteProduct)
	}
}
