// Package render draws a display model as an overview panel and a grid of
// cards for the terminal.
package render

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/krau/SiteLens/i18n"
	"github.com/krau/SiteLens/i18n/i18nk"
	"github.com/krau/SiteLens/pkg/display"
)

const (
	DefaultWidth  = 100
	minCardWidth  = 28
	maxCardColumn = 4
)

var (
	hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	overviewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8b949e")).
			Padding(1, 2).
			Align(lipgloss.Center)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#58a6ff"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#e1e1e1")).
			Padding(0, 1)
	cardTitleStyle = lipgloss.NewStyle().Bold(true)
	linkStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#007BFF")).Underline(true)
)

type Renderer struct {
	width int
}

func New(width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{width: width}
}

func (r *Renderer) Render(m *display.Model) string {
	if m == nil {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, r.Overview(m), r.Cards(m))
}

func (r *Renderer) Overview(m *display.Model) string {
	lines := []string{headingStyle.Render(i18n.T(i18nk.Overview)), ""}
	if m.LogoURL != "" {
		lines = append(lines, mutedStyle.Render(m.LogoURL))
	}
	lines = append(lines,
		nameStyle.Render(m.Name),
		m.Description,
		"",
		field(i18nk.Theme, m.Theme),
		field(i18nk.Created, m.CreatedDisplay),
		field(i18nk.LastUpdated, m.LastUpdatedDisplay),
		field(i18nk.HexCode, m.HexCode)+swatch(m.HexCode),
	)
	if m.IconToken != "" {
		lines = append(lines, field(i18nk.Icon, m.IconToken))
	}
	lines = append(lines, "", mutedStyle.Render(i18n.T(i18nk.CardsCount, map[string]any{
		"Count": humanize.Comma(int64(len(m.Cards))),
	})))
	return overviewStyle.Width(r.width - 2).Render(strings.Join(lines, "\n"))
}

// Cards lays the cards out in rows, as many columns as the width allows.
func (r *Renderer) Cards(m *display.Model) string {
	if len(m.Cards) == 0 {
		return ""
	}
	cols := max(1, min(maxCardColumn, r.width/minCardWidth))
	// two border columns per card
	cardWidth := r.width/cols - 2

	rows := make([]string, 0, (len(m.Cards)+cols-1)/cols)
	for start := 0; start < len(m.Cards); start += cols {
		end := min(start+cols, len(m.Cards))
		rendered := make([]string, 0, end-start)
		for _, c := range m.Cards[start:end] {
			rendered = append(rendered, r.card(c, m.IconToken, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) card(c display.Card, icon string, width int) string {
	var lines []string
	if icon != "" {
		lines = append(lines, mutedStyle.Render(icon))
	}
	lines = append(lines, cardTitleStyle.Render(c.Title))
	if c.Description != "" {
		lines = append(lines, c.Description)
	}
	if c.ThumbnailURL != "" {
		lines = append(lines, field(i18nk.Thumbnail, c.ThumbnailURL))
	}
	lines = append(lines,
		field(i18nk.LastUpdated, c.LastUpdatedDisplay),
		field(i18nk.Slug, c.Slug),
		"",
		i18n.T(i18nk.OpenContent)+": "+linkStyle.Render(c.SlugURL),
		i18n.T(i18nk.OpenSource)+": "+linkStyle.Render(c.LocationURL),
	)
	return cardStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func field(label i18nk.Key, value string) string {
	return labelStyle.Render(i18n.T(label)+":") + " " + value
}

func swatch(hex string) string {
	if !hexColorRe.MatchString(hex) {
		return ""
	}
	return " " + lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
