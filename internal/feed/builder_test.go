package feed_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/pages-alex-alex2006hw/gulliver/internal/config"
	"github.com/pages-alex-alex2006hw/gulliver/internal/feed"
	"github.com/pages-alex-alex2006hw/gulliver/internal/model"
	"github.com/pages-alex-alex2006hw/gulliver/internal/render"

	"github.com/stretchr/testify/require"
)

// fakeRenderer simulates per-item latency and failures while tracking
// how many renders were ever in flight at once.
type fakeRenderer struct {
	delays map[string]time.Duration
	fail   map[string]error

	mu          sync.Mutex
	inFlight    int
	maxInFlight int
	calls       []string
}

func (f *fakeRenderer) RenderItem(ctx context.Context, item render.ItemContext) (string, error) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.calls = append(f.calls, item.PWA.ID)
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if d := f.delays[item.PWA.ID]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err := f.fail[item.PWA.ID]; err != nil {
		return "", err
	}

	return "<p>fragment for " + item.PWA.ID + "</p>", nil
}

func testChannel() config.Feed {
	return config.DefaultFeed("https://directory.example")
}

func testPwas() []model.PWA {
	return []model.PWA{
		{
			ID:               "a",
			Name:             "foo",
			DisplayName:      "Foo",
			Description:      "First app",
			AbsoluteStartURL: "https://foo.example/",
			IconURL128:       "https://foo.example/icon-128.png",
			Created:          time.Date(2020, 1, 2, 10, 0, 0, 0, time.UTC),
			Updated:          time.Date(2020, 1, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:               "b",
			Name:             "bar",
			DisplayName:      "Bar",
			Description:      "Second app",
			AbsoluteStartURL: "https://bar.example/",
			IconURL128:       "https://bar.example/icon-128.png",
			Created:          time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC),
			Updated:          time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:               "c",
			Name:             "baz",
			DisplayName:      "Baz",
			Description:      "Third app",
			AbsoluteStartURL: "https://baz.example/",
			IconURL128:       "https://baz.example/icon-128.png",
			Created:          time.Date(2020, 1, 3, 12, 30, 0, 0, time.UTC),
			Updated:          time.Date(2020, 1, 4, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestBuilder_OrderSurvivesLatencySkew(t *testing.T) {
	// First item slowest: a concurrent build would finish c, b, a.
	renderer := &fakeRenderer{delays: map[string]time.Duration{
		"a": 60 * time.Millisecond,
		"b": 20 * time.Millisecond,
		"c": 0,
	}}
	builder := feed.NewBuilder(testChannel(), "https://directory.example", renderer, time.Second)

	out, err := builder.Build(context.Background(), feed.Request{Host: "directory.example", URI: "/api/pwas?format=rss"}, testPwas())
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().ParseString(string(out))
	require.NoError(t, err)
	require.Len(t, parsed.Items, 3)
	require.Equal(t, "Foo", parsed.Items[0].Title)
	require.Equal(t, "Bar", parsed.Items[1].Title)
	require.Equal(t, "Baz", parsed.Items[2].Title)

	require.Equal(t, []string{"a", "b", "c"}, renderer.calls)
	require.Equal(t, 1, renderer.maxInFlight)
}

func TestBuilder_RoundTrip(t *testing.T) {
	renderer := &fakeRenderer{}
	builder := feed.NewBuilder(testChannel(), "https://directory.example", renderer, time.Second)

	pwas := testPwas()
	out, err := builder.Build(context.Background(), feed.Request{}, pwas)
	require.NoError(t, err)

	raw := string(out)
	require.True(t, strings.HasPrefix(raw, "<?xml"))
	require.Contains(t, raw, `xmlns:atom="`+feed.NSAtom+`"`)
	require.Contains(t, raw, `xmlns:media="`+feed.NSMedia+`"`)
	require.Contains(t, raw, `xmlns:l="`+feed.NSLink+`"`)

	parsed, err := gofeed.NewParser().ParseString(raw)
	require.NoError(t, err)
	require.Equal(t, "PWA Directory", parsed.Title)
	require.Len(t, parsed.Items, len(pwas))

	first := parsed.Items[0]
	require.Equal(t, "a", first.GUID)
	require.Equal(t, "https://directory.example/pwas/a", first.Link)
	require.Contains(t, first.Description, "<p>fragment for a</p>")

	// item pubDate keeps the full creation timestamp
	require.NotNil(t, first.PublishedParsed)
	require.True(t, first.PublishedParsed.Equal(pwas[0].Created))

	media, ok := first.Extensions["media"]
	require.True(t, ok)
	thumbs := media["thumbnail"]
	require.Len(t, thumbs, 1)
	require.Equal(t, "https://foo.example/icon-128.png", thumbs[0].Attrs["url"])
	require.Equal(t, "128", thumbs[0].Attrs["width"])
	require.Equal(t, "128", thumbs[0].Attrs["height"])

	links, ok := first.Extensions["l"]
	require.True(t, ok)
	alt := links["link"]
	require.Len(t, alt, 1)
	require.Equal(t, "alternate", alt[0].Attrs["rel"])
	require.Equal(t, "https://directory.example/api/pwas/a", alt[0].Attrs["href"])
	require.Equal(t, "application/json", alt[0].Attrs["type"])
}

func TestBuilder_DescriptionIsCDATA(t *testing.T) {
	renderer := &fakeRenderer{}
	builder := feed.NewBuilder(testChannel(), "https://directory.example", renderer, time.Second)

	out, err := builder.Build(context.Background(), feed.Request{}, testPwas()[:1])
	require.NoError(t, err)
	require.Contains(t, string(out), "<![CDATA[<p>fragment for a</p>]]>")
}

func TestBuilder_RenderFailureAbortsBuild(t *testing.T) {
	renderErr := errors.New("template exploded")
	renderer := &fakeRenderer{fail: map[string]error{"b": renderErr}}
	builder := feed.NewBuilder(testChannel(), "https://directory.example", renderer, time.Second)

	out, err := builder.Build(context.Background(), feed.Request{}, testPwas())
	require.ErrorIs(t, err, renderErr)
	require.Nil(t, out)

	// rendering stops at the failed item
	require.Equal(t, []string{"a", "b"}, renderer.calls)
}

func TestBuilder_StalledRenderTimesOut(t *testing.T) {
	renderer := &fakeRenderer{delays: map[string]time.Duration{"a": time.Second}}
	builder := feed.NewBuilder(testChannel(), "https://directory.example", renderer, 30*time.Millisecond)

	start := time.Now()
	out, err := builder.Build(context.Background(), feed.Request{}, testPwas()[:1])
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Nil(t, out)
	require.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestBuilder_EmptyListingStillValidFeed(t *testing.T) {
	builder := feed.NewBuilder(testChannel(), "https://directory.example", &fakeRenderer{}, time.Second)

	out, err := builder.Build(context.Background(), feed.Request{}, nil)
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().ParseString(string(out))
	require.NoError(t, err)
	require.Empty(t, parsed.Items)
	require.Equal(t, "A Directory of Progressive Web Apps", parsed.Description)
}
