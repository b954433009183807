package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pages-alex-alex2006hw/gulliver/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// internalError writes the generic failure payload. The public cache
// directive may already be set by the time a formatter fails; it must
// not survive onto an error response.
func internalError(c echo.Context, err error) error {
	logger.Error("request failed",
		"module", "http",
		"action", "request",
		"resource", "pwa",
		"result", "failed",
		"path", c.Request().URL.Path,
		"error", err,
	)
	c.Response().Header().Del("Cache-Control")
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
