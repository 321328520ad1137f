package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"ratehub/internal/auth"
	"ratehub/internal/config"
	"ratehub/internal/handler"
	"ratehub/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	userHandler *handler.UserHandler,
	storeHandler *handler.StoreHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// Admin routes
	admin := secured.Group("/admin", auth.RequireRoles(model.RoleAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.POST("/stores", adminHandler.CreateStore)
	admin.GET("/stores", adminHandler.ListStores)
	admin.POST("/users", adminHandler.CreateUser)
	admin.GET("/users", adminHandler.ListUsers)

	// Normal user routes
	users := secured.Group("/users")
	users.GET("/stores", userHandler.ListStores, auth.RequireRoles(model.RoleUser))
	users.POST("/ratings", userHandler.SubmitRating, auth.RequireRoles(model.RoleUser))
	users.PUT("/profile/password", authHandler.UpdatePassword,
		auth.RequireRoles(model.RoleAdmin, model.RoleUser, model.RoleStoreOwner))

	// Store owner routes
	store := secured.Group("/store", auth.RequireRoles(model.RoleStoreOwner))
	store.GET("/dashboard", storeHandler.Dashboard)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
