package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RegisterFlags adds the global flags to cmd and binds them to viper.
func RegisterFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "config file path")
	flags.StringP("lang", "l", "", "language for messages and dates (e.g., en, en-GB, zh-Hans)")
	flags.String("timezone", "", "IANA time zone for dates (e.g., UTC, Europe/Berlin)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	// fetch
	flags.String("proxy", "", "proxy URL for manifest requests (http, https, socks5, socks5h)")
	flags.String("user-agent", "", "User-Agent header for manifest requests")
	flags.String("max-body-size", "", "largest accepted manifest (e.g., 16MB)")

	viper.BindPFlag("lang", flags.Lookup("lang"))
	viper.BindPFlag("timezone", flags.Lookup("timezone"))
	viper.BindPFlag("log.level", flags.Lookup("log-level"))
	viper.BindPFlag("fetch.proxy", flags.Lookup("proxy"))
	viper.BindPFlag("fetch.user_agent", flags.Lookup("user-agent"))
	viper.BindPFlag("fetch.max_body_size", flags.Lookup("max-body-size"))
}

// RegisterAPIFlags adds the flags of the API server to cmd.
func RegisterAPIFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.String("host", "", "address to listen on")
	flags.IntP("port", "p", 0, "port to listen on")
	flags.String("token", "", "bearer token required by the API")

	viper.BindPFlag("api.host", flags.Lookup("host"))
	viper.BindPFlag("api.port", flags.Lookup("port"))
	viper.BindPFlag("api.token", flags.Lookup("token"))
}

func GetConfigFile(cmd *cobra.Command) string {
	configFile, _ := cmd.Flags().GetString("config")
	return configFile
}
