package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/krau/SiteLens/cmd/inspect"
	"github.com/krau/SiteLens/config"
	"github.com/krau/SiteLens/i18n"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "sitelens",
	Short:             "Inspect HAX site manifests",
	SilenceUsage:      true,
	PersistentPreRunE: initAll,
}

func init() {
	config.RegisterFlags(rootCmd)
	inspect.Register(rootCmd)
}

func Execute(ctx context.Context) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "SiteLens",
	})
	ctx = log.WithContext(ctx, logger)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// initAll loads the config and applies it to the logger and i18n before
// any subcommand runs.
func initAll(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := config.Init(ctx, config.GetConfigFile(cmd)); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	level, err := log.ParseLevel(strings.ToLower(config.C().Log.Level))
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	log.FromContext(ctx).SetLevel(level)
	i18n.Init(config.C().Lang)
	return nil
}
