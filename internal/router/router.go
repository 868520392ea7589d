package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tasklist/internal/auth"
	"tasklist/internal/config"
	"tasklist/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	itemHandler *handler.ItemHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Server is running")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Secured routes: the gate delegates to the token service so signature,
	// issuer, audience, and lifetime are all enforced before any handler runs.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.Validate(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			c.Logger().Warnf("rejected token on %s %s", c.Request().Method, c.Request().URL.Path)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
		},
	}))

	// Item routes
	secured.GET("/items", itemHandler.ListItems)
	secured.GET("/items/:id", itemHandler.GetItem)
	secured.POST("/items", itemHandler.CreateItem)
	secured.PUT("/items/:id", itemHandler.UpdateItem)
	secured.DELETE("/items/:id", itemHandler.DeleteItem)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
