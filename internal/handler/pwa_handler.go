package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/singleflight"

	"github.com/pages-alex-alex2006hw/gulliver/internal/feed"
	"github.com/pages-alex-alex2006hw/gulliver/internal/format"
	"github.com/pages-alex-alex2006hw/gulliver/internal/model"
	"github.com/pages-alex-alex2006hw/gulliver/internal/service"
)

type PwaHandler struct {
	service      service.PwaService
	builder      *feed.Builder
	cacheControl string

	// identical feed URLs build once; renders carry request-scoped
	// context that must not overlap across in-flight builds
	feedGroup singleflight.Group
}

func NewPwaHandler(svc service.PwaService, builder *feed.Builder, cacheMaxAgeSeconds int) *PwaHandler {
	return &PwaHandler{
		service:      svc,
		builder:      builder,
		cacheControl: fmt.Sprintf("public, max-age=%d", cacheMaxAgeSeconds),
	}
}

func (h *PwaHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/pwas", h.List)
	g.GET("/pwas/:id", h.GetByID)
}

// List returns the PWA listing in the requested format.
// @Summary List PWAs
// @Description Get a page of directory entries as JSON (default), CSV, or an RSS feed
// @Tags pwas
// @Produce json,text/csv,application/rss+xml
// @Param format query string false "Output format: json, csv or rss"
// @Param sort query string false "Sort order (default newest)"
// @Param skip query int false "Listing offset"
// @Param limit query int false "Page size (default 100)"
// @Success 200 {array} format.View
// @Failure 500 {object} errorResponse
// @Router /pwas [get]
func (h *PwaHandler) List(c echo.Context) error {
	pwas, err := h.service.List(c.Request().Context(), parseListParams(c))
	if err != nil {
		return internalError(c, err)
	}

	return h.respond(c, pwas)
}

// GetByID returns a single PWA in the requested format.
// @Summary Get PWA
// @Description Get one directory entry by its ID, in any of the listing formats
// @Tags pwas
// @Produce json,text/csv,application/rss+xml
// @Param id path string true "PWA ID"
// @Param format query string false "Output format: json, csv or rss"
// @Success 200 {object} format.View
// @Failure 404 {object} errorResponse
// @Router /pwas/{id} [get]
func (h *PwaHandler) GetByID(c echo.Context) error {
	pwa, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		// any lookup failure terminates here; no format branching on
		// the failure path
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	}

	return h.respond(c, []model.PWA{pwa})
}

// respond is the single formatting path for both operations: cache
// directive first, then a pure branch on the format name. Every branch
// materializes the complete body before its one terminal write.
func (h *PwaHandler) respond(c echo.Context, pwas []model.PWA) error {
	c.Response().Header().Set("Cache-Control", h.cacheControl)

	switch c.QueryParam("format") {
	case format.CSV:
		body, err := format.EncodeCSV(pwas)
		if err != nil {
			return internalError(c, err)
		}
		return c.Blob(http.StatusOK, "text/csv", body)

	case format.RSS:
		req := feed.Request{
			Host:        c.Request().Host,
			URI:         c.Request().RequestURI,
			ContentOnly: parseBoolParam(c, "contentOnly"),
		}
		// the coalesced build serves every waiter, so it must not die
		// with whichever caller happened to start it
		buildCtx := context.WithoutCancel(c.Request().Context())
		body, err, _ := h.feedGroup.Do(c.Request().RequestURI, func() (interface{}, error) {
			return h.builder.Build(buildCtx, req, pwas)
		})
		if err != nil {
			return internalError(c, err)
		}
		return c.Blob(http.StatusOK, "application/rss+xml", body.([]byte))

	default:
		return c.JSON(http.StatusOK, format.Views(pwas))
	}
}
