// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"canteen/config"
	"canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CanteenHandler *handler.CanteenHandler
	DishHandler    *handler.DishHandler
	UserHandler    *handler.UserHandler
	ReviewHandler  *handler.ReviewHandler
	MediaHandler   *handler.MediaHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	canteenHandler *handler.CanteenHandler
	dishHandler    *handler.DishHandler
	userHandler    *handler.UserHandler
	reviewHandler  *handler.ReviewHandler
	mediaHandler   *handler.MediaHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		canteenHandler: params.CanteenHandler,
		dishHandler:    params.DishHandler,
		userHandler:    params.UserHandler,
		reviewHandler:  params.ReviewHandler,
		mediaHandler:   params.MediaHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Static segments such as /search win over :id in echo's router.
	canteensGroup := api.Group("/canteens")
	{
		canteensGroup.GET("", r.canteenHandler.ListCanteens)
		canteensGroup.POST("", r.canteenHandler.CreateCanteen)
		canteensGroup.GET("/search", r.canteenHandler.SearchCanteens)
		canteensGroup.GET("/qrcode/resolve", r.canteenHandler.ResolveCanteenQRCode)
		canteensGroup.GET("/:id", r.canteenHandler.GetCanteen)
		canteensGroup.GET("/:id/qrcode", r.canteenHandler.GetCanteenQRCode)
	}

	dishesGroup := api.Group("/dishes")
	{
		dishesGroup.GET("", r.dishHandler.ListDishes)
		dishesGroup.POST("", r.dishHandler.CreateDish)
		dishesGroup.GET("/search", r.dishHandler.SearchDishes)
		dishesGroup.GET("/canteen/:canteenId", r.dishHandler.ListDishesByCanteen)
		dishesGroup.GET("/:id", r.dishHandler.GetDish)
	}

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("/register", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login)
		usersGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
	}

	reviewsGroup := api.Group("/reviews")
	{
		reviewsGroup.POST("", r.reviewHandler.CreateReview, r.authMiddleware.OptionalAuthenticate)
		reviewsGroup.GET("/canteen/:canteenId", r.reviewHandler.ListReviewsByCanteen)
		reviewsGroup.GET("/dish/:dishId", r.reviewHandler.ListReviewsByDish)
	}

	mediaGroup := api.Group("/media")
	{
		mediaGroup.POST("/images", r.mediaHandler.UploadImage)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
