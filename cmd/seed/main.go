// Command seed populates the directory from a JSON file of manifest
// URLs, fetching each web app manifest to fill in record metadata.
//
// Input format:
//
//	[
//	  {"manifestUrl": "https://foo.example/manifest.json", "lighthouseScore": 87},
//	  {"manifestUrl": "https://bar.example/manifest.json"}
//	]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pages-alex-alex2006hw/gulliver/internal/config"
	"github.com/pages-alex-alex2006hw/gulliver/internal/db"
	"github.com/pages-alex-alex2006hw/gulliver/internal/logger"
	"github.com/pages-alex-alex2006hw/gulliver/internal/manifest"
	"github.com/pages-alex-alex2006hw/gulliver/internal/model"
	"github.com/pages-alex-alex2006hw/gulliver/internal/network"
	"github.com/pages-alex-alex2006hw/gulliver/internal/repository"
	"github.com/pages-alex-alex2006hw/gulliver/internal/snowflake"
)

const (
	fetchConcurrency = 8
	fetchTimeout     = 30 * time.Second
)

type seedEntry struct {
	ManifestURL     string          `json:"manifestUrl"`
	LighthouseScore float64         `json:"lighthouseScore"`
	WebPageTest     json.RawMessage `json:"webPageTest,omitempty"`
	PageSpeed       json.RawMessage `json:"pageSpeed,omitempty"`
}

func main() {
	input := flag.String("input", "seed.json", "path to the manifest URL list")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	if err := snowflake.Init(1); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	raw, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	var entries []seedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatalf("parse input: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	repo := repository.NewPwaRepository(dbConn)
	fetcher := manifest.NewFetcher(network.NewClientFactory(cfg.ProxyURL), fetchTimeout)

	ctx := context.Background()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	var mu sync.Mutex
	imported, failed := 0, 0

	for _, entry := range entries {
		g.Go(func() error {
			if err := importOne(ctx, fetcher, repo, entry); err != nil {
				logger.Warn("seed entry failed",
					"module", "seed",
					"action", "import",
					"resource", "pwa",
					"result", "failed",
					"manifest_url", entry.ManifestURL,
					"error", err,
				)
				mu.Lock()
				failed++
				mu.Unlock()
				// keep going; one bad manifest should not kill the run
				return nil
			}
			mu.Lock()
			imported++
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	count, err := repo.Count(ctx)
	if err != nil {
		log.Fatalf("count records: %v", err)
	}

	logger.Info("seed finished",
		"module", "seed",
		"action", "import",
		"resource", "pwa",
		"result", "ok",
		"imported", imported,
		"failed", failed,
		"total", count,
	)
}

func importOne(ctx context.Context, fetcher *manifest.Fetcher, repo repository.PwaRepository, entry seedEntry) error {
	m, err := fetcher.Fetch(ctx, entry.ManifestURL)
	if err != nil {
		return err
	}

	name := m.ShortName
	if name == "" {
		name = m.Name
	}
	displayName := m.Name
	if displayName == "" {
		displayName = m.ShortName
	}

	return repo.Upsert(ctx, model.PWA{
		ID:               snowflake.NextStringID(),
		Name:             name,
		DisplayName:      displayName,
		Description:      m.Description,
		AbsoluteStartURL: m.StartURL,
		ManifestURL:      entry.ManifestURL,
		IconURL128:       m.IconURL(128),
		LighthouseScore:  entry.LighthouseScore,
		WebPageTest:      entry.WebPageTest,
		PageSpeed:        entry.PageSpeed,
	})
}
