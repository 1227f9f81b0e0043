package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"blogapi/internal/config"
	"blogapi/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Login is the only unauthenticated entry point.
	api.POST("/auth", authHandler.Login)

	// Post routes require a valid, unexpired bearer token. Verification is
	// stateless: signature and expiration only, no revocation list. The
	// default token lookup strips the "Bearer " scheme from the
	// Authorization header.
	posts := api.Group("/posts", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.SecretKey),
	}))

	posts.GET("", postHandler.GetAll)
	posts.POST("/create", postHandler.Create)
	posts.PUT("/update", postHandler.Update)
	posts.DELETE("/delete", postHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
