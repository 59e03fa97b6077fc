package core

import (
	"fmt"

	"github.com/krau/SiteLens/common/utils/netutil"
	"github.com/krau/SiteLens/config"
	"github.com/krau/SiteLens/pkg/display"
	"github.com/krau/SiteLens/pkg/manifest"
	"github.com/krau/SiteLens/pkg/widget"
)

// NewFetcher builds a manifest fetcher from the loaded config.
func NewFetcher() (*manifest.Fetcher, error) {
	cfg := config.C()
	client, err := netutil.NewHTTPClient(cfg.Fetch.Proxy)
	if err != nil {
		return nil, fmt.Errorf("failed to create http client: %w", err)
	}
	return manifest.NewFetcher(
		manifest.WithHTTPClient(client),
		manifest.WithUserAgent(cfg.Fetch.UserAgent),
		manifest.WithMaxBodySize(cfg.Fetch.MaxBodyBytes()),
	), nil
}

func NewMapper() *display.Mapper {
	cfg := config.C()
	return display.NewMapper(
		display.WithLocale(cfg.Lang),
		display.WithLocation(cfg.Location()),
	)
}

func NewWidget() (*widget.Widget, error) {
	fetcher, err := NewFetcher()
	if err != nil {
		return nil, err
	}
	return widget.New(fetcher, NewMapper()), nil
}
