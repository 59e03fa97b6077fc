package display_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/krau/SiteLens/pkg/display"
	"github.com/krau/SiteLens/pkg/manifest"
)

const base = "https://example.com/sites/demo"

func mustRaw(t *testing.T, body string) *manifest.Raw {
	t.Helper()
	raw, err := manifest.DecodeRaw([]byte(body))
	if err != nil {
		t.Fatalf("DecodeRaw(%s) unexpected error: %v", body, err)
	}
	return raw
}

func newMapper() *display.Mapper {
	return display.NewMapper(display.WithLocale("en-US"), display.WithLocation(time.UTC))
}

func TestMapFullManifest(t *testing.T) {
	raw := mustRaw(t, `{
		"title": "HAX Docs",
		"description": "Documentation site",
		"metadata": {
			"site": {"logo": "files/logo.png", "created": "1700000000", "updated": 1710000000},
			"theme": {"element": "clean-two", "variables": {"hexCode": "#ff00aa", "icon": "icons:book"}}
		},
		"items": [
			{
				"title": "Intro",
				"description": "Start here",
				"slug": "intro",
				"location": "pages/intro/index.html",
				"metadata": {"updated": "1700086400", "images": ["files/intro.jpg", "files/other.jpg"]}
			},
			{
				"title": "Remote",
				"slug": "/remote",
				"location": "pages/remote/index.html",
				"metadata": {"images": ["https://cdn.example.org/remote.png"]}
			}
		]
	}`)

	want := &display.Model{
		Name:               "HAX Docs",
		Description:        "Documentation site",
		LogoURL:            base + "/files/logo.png",
		Theme:              "clean-two",
		HexCode:            "#ff00aa",
		IconToken:          "icons:book",
		CreatedDisplay:     "11/14/2023",
		LastUpdatedDisplay: "3/9/2024",
		BaseURL:            base,
		Cards: []display.Card{
			{
				Title:              "Intro",
				Description:        "Start here",
				Slug:               "intro",
				SlugURL:            base + "/intro",
				LocationURL:        base + "/pages/intro/index.html",
				ThumbnailURL:       base + "/files/intro.jpg",
				LastUpdatedDisplay: "11/15/2023",
			},
			{
				Title:              "Remote",
				Slug:               "/remote",
				SlugURL:            base + "/remote",
				LocationURL:        base + "/pages/remote/index.html",
				ThumbnailURL:       "https://cdn.example.org/remote.png",
				LastUpdatedDisplay: display.NotSpecified,
			},
		},
	}

	got := newMapper().Map(raw, base)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
}

func TestMapDefaults(t *testing.T) {
	got := newMapper().Map(mustRaw(t, `{}`), base)
	want := &display.Model{
		Name:               display.DefaultName,
		Description:        display.DefaultDescription,
		Theme:              display.DefaultTheme,
		HexCode:            display.DefaultHexCode,
		CreatedDisplay:     display.NotSpecified,
		LastUpdatedDisplay: display.NotSpecified,
		BaseURL:            base,
		Cards:              []display.Card{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
}

func TestMapEmptyStringsUseDefaults(t *testing.T) {
	got := newMapper().Map(mustRaw(t, `{
		"title": "",
		"description": "   ",
		"metadata": {"site": {"logo": ""}, "theme": {"element": null, "variables": {"hexCode": "", "icon": ""}}}
	}`), base)
	if got.Name != display.DefaultName || got.Description != display.DefaultDescription {
		t.Errorf("blank title/description not defaulted: %q / %q", got.Name, got.Description)
	}
	if got.LogoURL != "" {
		t.Errorf("LogoURL = %q; want empty", got.LogoURL)
	}
	if got.Theme != display.DefaultTheme || got.HexCode != display.DefaultHexCode {
		t.Errorf("theme defaults = %q / %q", got.Theme, got.HexCode)
	}
	if got.IconToken != "" {
		t.Errorf("IconToken = %q; want empty", got.IconToken)
	}
}

func TestMapDates(t *testing.T) {
	tests := []struct {
		name    string
		created string
		want    string
	}{
		{name: "absent", created: ``, want: display.NotSpecified},
		{name: "unparseable", created: `"created": "abc",`, want: display.NotSpecified},
		{name: "float", created: `"created": "1700000000.5",`, want: display.NotSpecified},
		{name: "out of range", created: `"created": "99999999999999",`, want: display.NotSpecified},
		{name: "null", created: `"created": null,`, want: display.NotSpecified},
		{name: "string seconds", created: `"created": "1700000000",`, want: "11/14/2023"},
		{name: "numeric seconds", created: `"created": 0,`, want: "1/1/1970"},
		{name: "padded", created: `"created": " 1700000000 ",`, want: "11/14/2023"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := mustRaw(t, `{"metadata": {"site": {`+tt.created+` "logo": "x.png"}}}`)
			got := newMapper().Map(raw, base).CreatedDisplay
			if got != tt.want {
				t.Errorf("CreatedDisplay = %q; want %q", got, tt.want)
			}
			if strings.Contains(got, "Invalid") {
				t.Errorf("CreatedDisplay leaked an invalid date: %q", got)
			}
		})
	}
}

func TestMapCardsPreserveOrder(t *testing.T) {
	raw := mustRaw(t, `{"items": [
		{"title": "A", "slug": "a"},
		{"title": "B", "slug": "b"},
		"garbage",
		{"title": "C", "slug": "c", "metadata": {"images": [], "updated": "later"}}
	]}`)
	cards := newMapper().Map(raw, base).Cards
	if len(cards) != 4 {
		t.Fatalf("cards = %d; want 4", len(cards))
	}
	titles := []string{cards[0].Title, cards[1].Title, cards[2].Title, cards[3].Title}
	if diff := cmp.Diff([]string{"A", "B", "", "C"}, titles); diff != "" {
		t.Errorf("card order mismatch (-want +got):\n%s", diff)
	}
	if cards[2].SlugURL != base+"/" {
		t.Errorf("SlugURL for item without slug = %q", cards[2].SlugURL)
	}
	if cards[3].ThumbnailURL != "" {
		t.Errorf("ThumbnailURL for empty images = %q; want empty", cards[3].ThumbnailURL)
	}
	if cards[3].LastUpdatedDisplay != display.NotSpecified {
		t.Errorf("LastUpdatedDisplay for unparseable date = %q", cards[3].LastUpdatedDisplay)
	}
}

func TestMapNoItems(t *testing.T) {
	for _, body := range []string{`{}`, `{"items": null}`, `{"items": {}}`, `{"items": []}`} {
		cards := newMapper().Map(mustRaw(t, body), base).Cards
		if cards == nil || len(cards) != 0 {
			t.Errorf("Map(%s).Cards = %#v; want empty non-nil slice", body, cards)
		}
	}
}

func TestDateLayout(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{lang: "en-US", want: "1/2/2006"},
		{lang: "en-GB", want: "02/01/2006"},
		{lang: "de", want: "2.1.2006"},
		{lang: "zh-Hans", want: "2006/1/2"},
		{lang: "not a tag!", want: "1/2/2006"},
	}
	for _, tc := range tests {
		if got := display.DateLayout(tc.lang); got != tc.want {
			t.Errorf("DateLayout(%q) = %q; want %q", tc.lang, got, tc.want)
		}
	}
}

func TestFormatEpochLocale(t *testing.T) {
	m := display.NewMapper(display.WithLocale("de-DE"), display.WithLocation(time.UTC))
	if got := m.FormatEpoch("1700000000"); got != "14.11.2023" {
		t.Errorf("FormatEpoch in de-DE = %q; want 14.11.2023", got)
	}
	if got := m.FormatEpoch(""); got != display.NotSpecified {
		t.Errorf("FormatEpoch(\"\") = %q; want %q", got, display.NotSpecified)
	}
}
