package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pages-alex-alex2006hw/gulliver/internal/service"
)

func parseListParams(c echo.Context) service.ListParams {
	params := service.ListParams{
		Sort: c.QueryParam("sort"),
	}

	// absent or non-numeric skip means no offset, not offset zero
	if raw := c.QueryParam("skip"); raw != "" {
		if skip, err := strconv.Atoi(raw); err == nil && skip >= 0 {
			params.Skip = &skip
		}
	}

	if raw := c.QueryParam("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	return params
}

func parseBoolParam(c echo.Context, name string) bool {
	switch c.QueryParam(name) {
	case "true", "1":
		return true
	default:
		return false
	}
}
