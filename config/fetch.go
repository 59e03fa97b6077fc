package config

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

type fetchConfig struct {
	Proxy       string `toml:"proxy" mapstructure:"proxy" json:"proxy"`
	UserAgent   string `toml:"user_agent" mapstructure:"user_agent" json:"user_agent"`
	MaxBodySize string `toml:"max_body_size" mapstructure:"max_body_size" json:"max_body_size"` // e.g. "16MB", "512KiB"
}

// MaxBodyBytes returns the parsed body size limit, 0 means the fetcher default.
func (f fetchConfig) MaxBodyBytes() int64 {
	if f.MaxBodySize == "" {
		return 0
	}
	n, err := humanize.ParseBytes(f.MaxBodySize)
	if err != nil {
		return 0
	}
	return int64(n)
}

func (f fetchConfig) validate() error {
	if f.MaxBodySize == "" {
		return nil
	}
	n, err := humanize.ParseBytes(f.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid fetch.max_body_size %q: %w", f.MaxBodySize, err)
	}
	if n == 0 {
		return fmt.Errorf("fetch.max_body_size must be greater than 0")
	}
	return nil
}
