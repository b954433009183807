// Package format holds the per-record projections for the non-feed
// output formats. Projections are pure: order in, order out, and only
// the listed fields ever make it through.
package format

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/pages-alex-alex2006hw/gulliver/internal/model"
)

// Format names accepted by the dispatch layer. Anything else serializes
// as JSON.
const (
	JSON = "json"
	CSV  = "csv"
	RSS  = "rss"
)

// CSVHeader is the fixed first row of every CSV listing.
var CSVHeader = []string{"id", "absoluteStartUrl", "manifestUrl", "lighthouseScore", "created", "updated"}

// View is the JSON projection of one record. Dates are day-precision;
// the metric blobs pass through untouched.
type View struct {
	ID               string          `json:"id"`
	AbsoluteStartURL string          `json:"absoluteStartUrl"`
	ManifestURL      string          `json:"manifestUrl"`
	LighthouseScore  float64         `json:"lighthouseScore"`
	WebPageTest      json.RawMessage `json:"webPageTest"`
	PageSpeed        json.RawMessage `json:"pageSpeed"`
	Created          string          `json:"created"`
	Updated          string          `json:"updated"`
}

// Views projects records for JSON output, preserving input order.
func Views(pwas []model.PWA) []View {
	views := make([]View, len(pwas))
	for i, pwa := range pwas {
		views[i] = View{
			ID:               pwa.ID,
			AbsoluteStartURL: pwa.AbsoluteStartURL,
			ManifestURL:      pwa.ManifestURL,
			LighthouseScore:  pwa.LighthouseScore,
			WebPageTest:      rawOrNull(pwa.WebPageTest),
			PageSpeed:        rawOrNull(pwa.PageSpeed),
			Created:          Day(pwa.Created),
			Updated:          Day(pwa.Updated),
		}
	}
	return views
}

// Rows projects records for CSV output: the fixed header followed by
// one row per record in input order.
func Rows(pwas []model.PWA) [][]string {
	rows := make([][]string, 0, len(pwas)+1)
	rows = append(rows, CSVHeader)
	for _, pwa := range pwas {
		rows = append(rows, []string{
			pwa.ID,
			pwa.AbsoluteStartURL,
			pwa.ManifestURL,
			strconv.FormatFloat(pwa.LighthouseScore, 'f', -1, 64),
			Day(pwa.Created),
			Day(pwa.Updated),
		})
	}
	return rows
}

// EncodeCSV writes the rows through encoding/csv, which owns all
// quoting and escaping.
func EncodeCSV(pwas []model.PWA) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(Rows(pwas)); err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Day truncates a timestamp to its calendar date in UTC.
func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func rawOrNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}
