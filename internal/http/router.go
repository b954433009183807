package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/pages-alex-alex2006hw/gulliver/docs"
	"github.com/pages-alex-alex2006hw/gulliver/internal/handler"
)

func NewRouter(pwaHandler *handler.PwaHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLoggerMiddleware())
	e.Use(RateLimitMiddleware(NewIPRateLimiter(DefaultRateLimit)))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	pwaHandler.RegisterRoutes(api)

	return e
}
