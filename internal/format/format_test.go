package format_test

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pages-alex-alex2006hw/gulliver/internal/format"
	"github.com/pages-alex-alex2006hw/gulliver/internal/model"

	"github.com/stretchr/testify/require"
)

func samplePwas() []model.PWA {
	return []model.PWA{
		{
			ID:               "a",
			DisplayName:      "Foo",
			AbsoluteStartURL: "https://foo.example/",
			ManifestURL:      "https://foo.example/manifest.json",
			LighthouseScore:  87.5,
			WebPageTest:      []byte(`{"firstByte":120}`),
			PageSpeed:        []byte(`{"score":91}`),
			Created:          time.Date(2020, 1, 2, 10, 0, 0, 0, time.UTC),
			Updated:          time.Date(2020, 1, 4, 23, 59, 59, 0, time.UTC),
		},
		{
			ID:               "b",
			DisplayName:      "Bar",
			AbsoluteStartURL: "https://bar.example/",
			ManifestURL:      "https://bar.example/manifest.json",
			LighthouseScore:  42,
			Created:          time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC),
			Updated:          time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestViews_FieldSetAndDayPrecision(t *testing.T) {
	views := format.Views(samplePwas())
	require.Len(t, views, 2)

	require.Equal(t, "a", views[0].ID)
	require.Equal(t, "2020-01-02", views[0].Created)
	require.Equal(t, "2020-01-04", views[0].Updated)
	require.Equal(t, "b", views[1].ID)
	require.Equal(t, "2020-01-05", views[1].Created)

	// exactly the documented keys, nothing else leaks through
	out, err := json.Marshal(views[0])
	require.NoError(t, err)
	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &keys))
	require.ElementsMatch(t,
		[]string{"id", "absoluteStartUrl", "manifestUrl", "lighthouseScore", "webPageTest", "pageSpeed", "created", "updated"},
		mapKeys(keys),
	)
	require.JSONEq(t, `{"firstByte":120}`, string(keys["webPageTest"]))
}

func TestViews_MissingMetricsAreNull(t *testing.T) {
	views := format.Views(samplePwas())

	out, err := json.Marshal(views[1])
	require.NoError(t, err)
	require.Contains(t, string(out), `"webPageTest":null`)
	require.Contains(t, string(out), `"pageSpeed":null`)
}

func TestRows_HeaderAndOrder(t *testing.T) {
	pwas := samplePwas()
	rows := format.Rows(pwas)

	require.Len(t, rows, len(pwas)+1)
	require.Equal(t, format.CSVHeader, rows[0])
	require.Equal(t, []string{"a", "https://foo.example/", "https://foo.example/manifest.json", "87.5", "2020-01-02", "2020-01-04"}, rows[1])
	require.Equal(t, "b", rows[2][0])
	require.Equal(t, "42", rows[2][3])
}

func TestEncodeCSV_QuotesDelimiters(t *testing.T) {
	pwas := []model.PWA{{
		ID:               "x",
		AbsoluteStartURL: "https://x.example/?a=1,b=2",
		ManifestURL:      "https://x.example/manifest.json",
		Created:          time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Updated:          time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}}

	out, err := format.EncodeCSV(pwas)
	require.NoError(t, err)

	// the encoder owns RFC 4180 quoting
	require.Contains(t, string(out), `"https://x.example/?a=1,b=2"`)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "https://x.example/?a=1,b=2", records[1][1])
}

func TestDay_TruncatesToUTCDate(t *testing.T) {
	loc := time.FixedZone("plus5", 5*3600)
	ts := time.Date(2020, 1, 3, 2, 0, 0, 0, loc) // 2020-01-02T21:00:00Z
	require.Equal(t, "2020-01-02", format.Day(ts))
}

func mapKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
