package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/pages-alex-alex2006hw/gulliver/internal/config"
	"github.com/pages-alex-alex2006hw/gulliver/internal/logger"
	"github.com/pages-alex-alex2006hw/gulliver/internal/model"
	"github.com/pages-alex-alex2006hw/gulliver/internal/render"
)

// Request is the per-request metadata each item render receives.
type Request struct {
	Host        string
	URI         string
	ContentOnly bool
}

// Builder assembles the directory RSS feed. Item fragments are rendered
// strictly in record order: renders carry request-scoped context, so
// later items must not start before earlier ones finish.
type Builder struct {
	channel       config.Feed
	baseURL       string
	renderer      render.Renderer
	renderTimeout time.Duration
}

func NewBuilder(channel config.Feed, baseURL string, renderer render.Renderer, renderTimeout time.Duration) *Builder {
	return &Builder{
		channel:       channel,
		baseURL:       baseURL,
		renderer:      renderer,
		renderTimeout: renderTimeout,
	}
}

// Build renders every record's fragment in order, then serializes the
// whole document once. Any render failure aborts the build; no partial
// feed is ever returned.
func (b *Builder) Build(ctx context.Context, req Request, pwas []model.PWA) ([]byte, error) {
	doc := document{
		Version: "2.0",
		NSAtom:  NSAtom,
		NSMedia: NSMedia,
		NSLink:  NSLink,
		Channel: channel{
			Title:       b.channel.Title,
			Link:        b.channel.SiteURL,
			Description: b.channel.Description,
			PubDate:     time.Now().UTC().Format(time.RFC1123Z),
			Generator:   config.AppName + " " + config.AppVersion,
			AtomLink: atomLink{
				Href: b.channel.FeedURL,
				Rel:  "self",
				Type: "application/rss+xml",
			},
		},
	}
	if b.channel.ImageURL != "" {
		doc.Channel.Image = &image{
			URL:   b.channel.ImageURL,
			Title: b.channel.Title,
			Link:  b.channel.SiteURL,
		}
	}

	start := time.Now()
	for _, pwa := range pwas {
		fragment, err := b.renderItem(ctx, req, pwa)
		if err != nil {
			return nil, err
		}
		doc.Channel.Items = append(doc.Channel.Items, b.item(pwa, fragment))
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal feed: %w", err)
	}

	logger.Debug("feed built",
		"module", "feed",
		"action", "build",
		"resource", "rss",
		"result", "ok",
		"items", len(pwas),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return append([]byte(xml.Header), out...), nil
}

// renderItem is the sole suspension point of a feed build. The render
// is bounded: a stalled renderer fails the item (and so the feed)
// instead of stalling the response forever.
func (b *Builder) renderItem(ctx context.Context, req Request, pwa model.PWA) (string, error) {
	rctx, cancel := context.WithTimeout(ctx, b.renderTimeout)
	defer cancel()

	itemCtx := render.ItemContext{
		RequestHost: req.Host,
		RequestURI:  req.URI,
		Title:       pwa.Name,
		Description: pwa.Description,
		DetailURL:   b.detailURL(pwa),
		PWA:         pwa,
		ContentOnly: req.ContentOnly,
		Backlink:    true,
	}

	type result struct {
		html string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		html, err := b.renderer.RenderItem(rctx, itemCtx)
		ch <- result{html: html, err: err}
	}()

	select {
	case <-rctx.Done():
		return "", fmt.Errorf("render item %s: %w", pwa.ID, rctx.Err())
	case res := <-ch:
		if res.err != nil {
			return "", fmt.Errorf("render item %s: %w", pwa.ID, res.err)
		}
		return res.html, nil
	}
}

func (b *Builder) item(pwa model.PWA, fragment string) item {
	return item{
		Title:       pwa.DisplayName,
		Link:        b.detailURL(pwa),
		Description: cdataString{Value: fragment},
		GUID:        guid{Value: pwa.ID, IsPermaLink: "false"},
		// the one place full timestamp precision survives
		PubDate: pwa.Created.UTC().Format(time.RFC1123Z),
		Thumbnail: mediaThumbnail{
			URL:    pwa.IconURL128,
			Width:  128,
			Height: 128,
		},
		Alternate: moduleLink{
			Rel:  "alternate",
			Href: b.apiURL(pwa),
			Type: "application/json",
		},
	}
}

func (b *Builder) detailURL(pwa model.PWA) string {
	return b.baseURL + "/pwas/" + pwa.ID
}

func (b *Builder) apiURL(pwa model.PWA) string {
	return b.baseURL + "/api/pwas/" + pwa.ID
}
