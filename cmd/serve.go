package cmd

import (
	"fmt"

	"github.com/krau/SiteLens/api"
	"github.com/krau/SiteLens/config"
	"github.com/krau/SiteLens/core"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve site overviews over an HTTP JSON API",
	Args:  cobra.NoArgs,
	RunE:  Serve,
}

func init() {
	config.RegisterAPIFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func Serve(cmd *cobra.Command, _ []string) error {
	fetcher, err := core.NewFetcher()
	if err != nil {
		return err
	}
	cfg := config.C().API
	server := api.NewServer(fetcher, core.NewMapper(), api.Options{
		Token:      cfg.Token,
		TrustedIPs: cfg.TrustedIPs,
		RateLimit:  cfg.RateLimit,
		RateBurst:  cfg.RateBurst,
	})
	if err := server.Serve(cmd.Context(), cfg.Addr()); err != nil {
		return fmt.Errorf("failed to serve API: %w", err)
	}
	return nil
}
