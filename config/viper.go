package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

type Config struct {
	Lang     string `toml:"lang" mapstructure:"lang" json:"lang"`
	Timezone string `toml:"timezone" mapstructure:"timezone" json:"timezone"`

	Log   logConfig   `toml:"log" mapstructure:"log" json:"log"`
	Fetch fetchConfig `toml:"fetch" mapstructure:"fetch" json:"fetch"`
	API   apiConfig   `toml:"api" mapstructure:"api" json:"api"`

	location *time.Location
}

type logConfig struct {
	Level string `toml:"level" mapstructure:"level" json:"level"`
}

var cfg = &Config{}

func C() *Config {
	return cfg
}

// Location is the time zone used for date display.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func setDefaults() {
	viper.SetDefault("lang", "en")
	viper.SetDefault("timezone", "Local")
	viper.SetDefault("log.level", "INFO")

	viper.SetDefault("fetch.proxy", "")
	viper.SetDefault("fetch.user_agent", "SiteLens/"+Version)
	viper.SetDefault("fetch.max_body_size", "16MB")

	viper.SetDefault("api.host", "")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("api.token", "")
	viper.SetDefault("api.trusted_ips", []string{})
	viper.SetDefault("api.rate_limit", 5.0)
	viper.SetDefault("api.rate_burst", 10)
}

// Init loads config.toml (or configFile), environment variables and bound
// flags. A missing config file is fine, everything has a default.
func Init(ctx context.Context, configFile string) error {
	logger := log.FromContext(ctx).WithPrefix("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/sitelens/")
	}
	viper.SetEnvPrefix("SITELENS")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		logger.Debug("No config file found, using defaults")
	} else {
		logger.Debug("Using config file", "path", viper.ConfigFileUsed())
	}

	loaded := &Config{}
	if err := viper.Unmarshal(loaded); err != nil {
		return fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := loaded.validate(); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func (c *Config) validate() error {
	if _, err := language.Parse(c.Lang); err != nil {
		return fmt.Errorf("invalid lang %q: %w", c.Lang, err)
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	c.location = loc
	if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if err := c.Fetch.validate(); err != nil {
		return err
	}
	return c.API.validate()
}
