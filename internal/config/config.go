package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	AppName    = "Gulliver"
	AppVersion = "1.0.0"
	AppRepo    = "https://github.com/pages-alex-alex2006hw/gulliver"
)

// GulliverUserAgent identifies outbound manifest fetches.
var GulliverUserAgent = "Mozilla/5.0 (compatible; " + AppName + "/" + AppVersion + "; +" + AppRepo + ")"

const (
	// CacheMaxAge is the Cache-Control max-age attached to successful
	// listing responses.
	CacheMaxAge = time.Hour

	// DefaultLimit is the listing page size when the request carries no
	// limit parameter.
	DefaultLimit = 100

	// RenderTimeout bounds a single feed item render.
	RenderTimeout = 10 * time.Second
)

// Feed holds the fixed RSS channel metadata.
type Feed struct {
	Title       string
	Description string
	FeedURL     string
	SiteURL     string
	ImageURL    string
}

type Config struct {
	Addr     string
	DBPath   string
	DataDir  string
	BaseURL  string
	LogLevel string
	ProxyURL string
	Feed     Feed
}

func Load() Config {
	addr := os.Getenv("GULLIVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dataDir := os.Getenv("GULLIVER_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	path := os.Getenv("GULLIVER_DB_PATH")
	if path == "" {
		path = filepath.Join(dataDir, "gulliver.db")
	}
	baseURL := os.Getenv("GULLIVER_BASE_URL")
	if baseURL == "" {
		baseURL = "https://pwa-directory.appspot.com"
	}
	logLevel := os.Getenv("GULLIVER_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return Config{
		Addr:     addr,
		DBPath:   filepath.Clean(path),
		DataDir:  filepath.Clean(dataDir),
		BaseURL:  baseURL,
		LogLevel: logLevel,
		ProxyURL: os.Getenv("GULLIVER_PROXY"),
		Feed:     DefaultFeed(baseURL),
	}
}

// DefaultFeed returns the channel metadata for the directory feed,
// anchored at the given base URL.
func DefaultFeed(baseURL string) Feed {
	return Feed{
		Title:       "PWA Directory",
		Description: "A Directory of Progressive Web Apps",
		FeedURL:     baseURL + "/api/pwas?format=rss",
		SiteURL:     baseURL,
		ImageURL:    baseURL + "/favicons/android-chrome-144x144.png",
	}
}
