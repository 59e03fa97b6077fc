package config

import "fmt"

type apiConfig struct {
	Host       string   `toml:"host" mapstructure:"host" json:"host"`
	Port       int      `toml:"port" mapstructure:"port" json:"port"`
	Token      string   `toml:"token" mapstructure:"token" json:"token"`             // empty disables bearer auth
	TrustedIPs []string `toml:"trusted_ips" mapstructure:"trusted_ips" json:"trusted_ips"` // ips or CIDRs, "*" for any
	RateLimit  float64  `toml:"rate_limit" mapstructure:"rate_limit" json:"rate_limit"`   // requests per second, <= 0 disables
	RateBurst  int      `toml:"rate_burst" mapstructure:"rate_burst" json:"rate_burst"`
}

func (a apiConfig) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

func (a apiConfig) validate() error {
	if a.Port < 0 || a.Port > 65535 {
		return fmt.Errorf("invalid api.port %d", a.Port)
	}
	if a.RateLimit > 0 && a.RateBurst < 1 {
		return fmt.Errorf("api.rate_burst must be at least 1 when api.rate_limit is set")
	}
	return nil
}
