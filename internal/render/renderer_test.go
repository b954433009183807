package render_test

import (
	"context"
	"testing"

	"github.com/pages-alex-alex2006hw/gulliver/internal/model"
	"github.com/pages-alex-alex2006hw/gulliver/internal/render"

	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_RenderItem(t *testing.T) {
	r, err := render.NewTemplateRenderer()
	require.NoError(t, err)

	html, err := r.RenderItem(context.Background(), render.ItemContext{
		Title:       "Foo App",
		Description: "A <b>great</b> app",
		DetailURL:   "https://directory.example/pwas/abc",
		PWA: model.PWA{
			ID:               "abc",
			AbsoluteStartURL: "https://foo.example/start",
			IconURL128:       "https://foo.example/icon-128.png",
		},
		Backlink: true,
	})
	require.NoError(t, err)

	require.Contains(t, html, "<h2>Foo App</h2>")
	require.Contains(t, html, `src="https://foo.example/icon-128.png"`)
	require.Contains(t, html, `href="https://foo.example/start"`)
	require.Contains(t, html, `href="https://directory.example/pwas/abc"`)
	require.Contains(t, html, "<b>great</b>")
	require.Contains(t, html, `<div class="pwa-card">`)
}

func TestTemplateRenderer_ContentOnlySkipsWrapper(t *testing.T) {
	r, err := render.NewTemplateRenderer()
	require.NoError(t, err)

	html, err := r.RenderItem(context.Background(), render.ItemContext{
		Title:       "Foo",
		ContentOnly: true,
	})
	require.NoError(t, err)

	require.NotContains(t, html, "pwa-card")
	require.Contains(t, html, "<h2>Foo</h2>")
}

func TestTemplateRenderer_SanitizesDescription(t *testing.T) {
	r, err := render.NewTemplateRenderer()
	require.NoError(t, err)

	html, err := r.RenderItem(context.Background(), render.ItemContext{
		Title:       "Evil",
		Description: `hello <script>alert("x")</script> world`,
	})
	require.NoError(t, err)

	require.NotContains(t, html, "<script>")
	require.Contains(t, html, "hello")
	require.Contains(t, html, "world")
}

func TestTemplateRenderer_HonorsCancelledContext(t *testing.T) {
	r, err := render.NewTemplateRenderer()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.RenderItem(ctx, render.ItemContext{Title: "Foo"})
	require.ErrorIs(t, err, context.Canceled)
}
