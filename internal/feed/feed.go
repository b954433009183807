package feed

import "encoding/xml"

// Namespace URIs declared on every generated feed. The media namespace
// carries item thumbnails, the link module carries the alternate
// machine-readable link per item.
const (
	NSAtom  = "http://www.w3.org/2005/Atom"
	NSMedia = "http://search.yahoo.com/mrss/"
	NSLink  = "http://purl.org/rss/1.0/modules/link/"
)

type document struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	NSAtom  string   `xml:"xmlns:atom,attr"`
	NSMedia string   `xml:"xmlns:media,attr"`
	NSLink  string   `xml:"xmlns:l,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
	Generator   string   `xml:"generator"`
	Image       *image   `xml:"image,omitempty"`
	AtomLink    atomLink `xml:"atom:link"`
	Items       []item   `xml:"item"`
}

type image struct {
	URL   string `xml:"url"`
	Title string `xml:"title"`
	Link  string `xml:"link"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type item struct {
	Title       string         `xml:"title"`
	Link        string         `xml:"link"`
	Description cdataString    `xml:"description"`
	GUID        guid           `xml:"guid"`
	PubDate     string         `xml:"pubDate"`
	Thumbnail   mediaThumbnail `xml:"media:thumbnail"`
	Alternate   moduleLink     `xml:"l:link"`
}

// Descriptions hold the rendered fragment as markup, so they go out as
// CDATA rather than entity-escaped text.
type cdataString struct {
	Value string `xml:",cdata"`
}

// Record IDs are opaque, not URLs.
type guid struct {
	Value       string `xml:",chardata"`
	IsPermaLink string `xml:"isPermaLink,attr"`
}

type mediaThumbnail struct {
	URL    string `xml:"url,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
}

type moduleLink struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr"`
}
