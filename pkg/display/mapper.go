package display

import (
	"strings"
	"time"

	"github.com/duke-git/lancet/v2/strutil"
	"github.com/krau/SiteLens/pkg/manifest"
)

// Mapper projects a raw manifest onto a Model.
type Mapper struct {
	layout   string
	location *time.Location
}

type MapperOption func(*Mapper)

// WithLocale sets the language used for date display.
func WithLocale(lang string) MapperOption {
	return func(m *Mapper) {
		m.layout = DateLayout(lang)
	}
}

func WithLocation(loc *time.Location) MapperOption {
	return func(m *Mapper) {
		if loc != nil {
			m.location = loc
		}
	}
}

func NewMapper(opts ...MapperOption) *Mapper {
	m := &Mapper{
		layout:   DateLayout("en-US"),
		location: time.Local,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Mapper) Map(raw *manifest.Raw, baseURL string) *Model {
	model := &Model{
		Name:               raw.StringOr(DefaultName, "title"),
		Description:        raw.StringOr(DefaultDescription, "description"),
		Theme:              raw.StringOr(DefaultTheme, "metadata", "theme", "element"),
		HexCode:            raw.StringOr(DefaultHexCode, "metadata", "theme", "variables", "hexCode"),
		IconToken:          raw.StringOr("", "metadata", "theme", "variables", "icon"),
		CreatedDisplay:     m.formatDate(raw, "metadata", "site", "created"),
		LastUpdatedDisplay: m.formatDate(raw, "metadata", "site", "updated"),
		BaseURL:            baseURL,
	}
	if logo, ok := raw.String("metadata", "site", "logo"); ok {
		model.LogoURL = resolve(baseURL, logo)
	}

	items := raw.Items()
	model.Cards = make([]Card, len(items))
	for i, item := range items {
		model.Cards[i] = m.mapCard(item, baseURL)
	}
	return model
}

func (m *Mapper) mapCard(item *manifest.Raw, baseURL string) Card {
	slug := item.StringOr("", "slug")
	card := Card{
		Title:              item.StringOr("", "title"),
		Description:        item.StringOr("", "description"),
		Slug:               slug,
		SlugURL:            join(baseURL, slug),
		LocationURL:        join(baseURL, item.StringOr("", "location")),
		LastUpdatedDisplay: m.formatDate(item, "metadata", "updated"),
	}
	if images := item.Strings("metadata", "images"); len(images) > 0 && images[0] != "" {
		card.ThumbnailURL = resolve(baseURL, images[0])
	}
	return card
}

// FormatEpoch renders epoch seconds as a calendar date, or NotSpecified.
func (m *Mapper) FormatEpoch(s string) string {
	t, ok := ParseEpoch(s)
	if !ok {
		return NotSpecified
	}
	return t.In(m.location).Format(m.layout)
}

func (m *Mapper) formatDate(raw *manifest.Raw, path ...string) string {
	s, ok := raw.String(path...)
	if !ok {
		return NotSpecified
	}
	return m.FormatEpoch(s)
}

func join(base, p string) string {
	return base + "/" + strings.TrimPrefix(p, "/")
}

// resolve keeps absolute references and joins relative ones onto base.
func resolve(base, ref string) string {
	if strutil.HasPrefixAny(ref, []string{"http://", "https://", "//", "data:"}) {
		return ref
	}
	return join(base, ref)
}

var defaultMapper = NewMapper()

// Map uses an en-US mapper in the local time zone.
func Map(raw *manifest.Raw, baseURL string) *Model {
	return defaultMapper.Map(raw, baseURL)
}
