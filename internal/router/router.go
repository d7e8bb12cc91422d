package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"onlydevs/internal/config"
	"onlydevs/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	gigHandler *handler.GigHandler,
	payoutHandler *handler.PayoutHandler,
	callHandler *handler.CallHandler,
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

	// Gig collection routes
	api.GET("/gigs", gigHandler.ListGigs)
	api.POST("/gigs", gigHandler.CreateGig)
	api.PUT("/gigs", gigHandler.UpdateGigs)
	api.GET("/gigs/:id", gigHandler.GetGig)
	api.PUT("/gigs/:id", gigHandler.UpdateGig)

	// Payment routes
	api.POST("/wallet/connect", payoutHandler.Connect)
	api.POST("/gigs/:id/payout", payoutHandler.PayBounty)

	// Call routes
	api.POST("/gigs/:id/call", callHandler.StartCall)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
