package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"

	"github.com/pages-alex-alex2006hw/gulliver/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// ItemContext carries everything a single feed item fragment needs:
// request metadata, the record itself, the derived title/description
// pair, and the two presentation flags from the feed builder.
type ItemContext struct {
	RequestHost string
	RequestURI  string
	Title       string
	Description string
	DetailURL   string
	PWA         model.PWA
	ContentOnly bool
	Backlink    bool
}

// Renderer produces the HTML description fragment for one feed item.
// Implementations may block on external work and must honor ctx.
type Renderer interface {
	RenderItem(ctx context.Context, item ItemContext) (string, error)
}

type templateRenderer struct {
	tmpl   *template.Template
	policy *bluemonday.Policy
}

// NewTemplateRenderer parses the embedded fragment templates. Record
// descriptions come from third-party manifests, so they go through a
// UGC sanitizer before being embedded as markup.
func NewTemplateRenderer() (Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &templateRenderer{
		tmpl:   tmpl,
		policy: bluemonday.UGCPolicy(),
	}, nil
}

type itemView struct {
	ItemContext
	SafeDescription template.HTML
}

func (r *templateRenderer) RenderItem(ctx context.Context, item ItemContext) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	view := itemView{
		ItemContext:     item,
		SafeDescription: template.HTML(r.policy.Sanitize(item.Description)),
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "feed_item.html", view); err != nil {
		return "", fmt.Errorf("render feed item: %w", err)
	}

	return buf.String(), nil
}
