package model

import (
	"encoding/json"
	"time"
)

// PWA is one directory entry. IDs are opaque strings assigned at import
// time and stable across requests. WebPageTest and PageSpeed hold the
// raw metric documents as stored; nothing in the serving path looks
// inside them.
type PWA struct {
	ID               string
	Name             string
	DisplayName      string
	Description      string
	AbsoluteStartURL string
	ManifestURL      string
	IconURL128       string
	LighthouseScore  float64
	WebPageTest      json.RawMessage
	PageSpeed        json.RawMessage
	Created          time.Time
	Updated          time.Time
}
