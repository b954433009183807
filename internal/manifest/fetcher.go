// Package manifest fetches and parses web app manifests for the
// seeder. The serving path never touches the network.
package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pages-alex-alex2006hw/gulliver/internal/config"
	"github.com/pages-alex-alex2006hw/gulliver/internal/network"
)

// Manifest is the subset of a web app manifest the directory uses.
// StartURL and icon sources are resolved to absolute URLs against the
// manifest's own URL.
type Manifest struct {
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	Description string `json:"description"`
	StartURL    string `json:"start_url"`
	Icons       []Icon `json:"icons"`
}

type Icon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// IconURL picks the icon closest to the wanted square size, preferring
// larger over smaller when equidistant.
func (m Manifest) IconURL(size int) string {
	best := ""
	bestDelta := -1
	for _, icon := range m.Icons {
		w := iconWidth(icon.Sizes)
		if w == 0 {
			continue
		}
		delta := w - size
		if delta < 0 {
			delta = -delta*2 + 1 // undersized icons lose ties
		}
		if bestDelta == -1 || delta < bestDelta {
			best = icon.Src
			bestDelta = delta
		}
	}
	return best
}

func iconWidth(sizes string) int {
	// "48x48 96x96" lists are allowed; take the first entry
	first := strings.Fields(sizes)
	if len(first) == 0 {
		return 0
	}
	parts := strings.SplitN(strings.ToLower(first[0]), "x", 2)
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	return w
}

type Fetcher struct {
	clients *network.ClientFactory
	timeout time.Duration
}

func NewFetcher(clients *network.ClientFactory, timeout time.Duration) *Fetcher {
	return &Fetcher{clients: clients, timeout: timeout}
}

func (f *Fetcher) Fetch(ctx context.Context, manifestURL string) (Manifest, error) {
	base, err := url.Parse(manifestURL)
	if err != nil {
		return Manifest{}, fmt.Errorf("parse manifest url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return Manifest{}, fmt.Errorf("unsupported manifest url scheme %q", base.Scheme)
	}

	body, status, err := f.clients.Get(ctx, manifestURL, f.timeout, config.GulliverUserAgent)
	if err != nil {
		return Manifest{}, fmt.Errorf("fetch manifest %s: %w", manifestURL, err)
	}
	if status != http.StatusOK {
		return Manifest{}, fmt.Errorf("fetch manifest %s: status %d", manifestURL, status)
	}

	var m Manifest
	if err := json.Unmarshal(body, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest %s: %w", manifestURL, err)
	}

	if m.StartURL == "" {
		m.StartURL = "."
	}
	m.StartURL = resolve(base, m.StartURL)
	for i := range m.Icons {
		m.Icons[i].Src = resolve(base, m.Icons[i].Src)
	}

	return m, nil
}

func resolve(base *url.URL, ref string) string {
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(parsed).String()
}
