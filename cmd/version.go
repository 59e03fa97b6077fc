package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/krau/SiteLens/config"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Print the version number of sitelens",
	// no config needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sitelens version: %s %s/%s\nBuildTime: %s, Commit: %s\n",
			displayVersion(config.Version), runtime.GOOS, runtime.GOARCH, config.BuildTime, config.GitCommit)
	},
}

// displayVersion normalizes release versions ("v1.2.0" becomes "1.2.0") and
// leaves anything that is not semver, like "dev", as it is.
func displayVersion(raw string) string {
	v, err := semver.ParseTolerant(raw)
	if err != nil {
		return raw
	}
	return v.String()
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
