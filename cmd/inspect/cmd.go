package inspect

import (
	"fmt"

	"github.com/krau/SiteLens/core"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [site-url]",
	Short: "Open the interactive site overview widget",
	Args:  cobra.MaximumNArgs(1),
	RunE:  Inspect,
}

func Register(root *cobra.Command) {
	root.AddCommand(inspectCmd)
}

func Inspect(cmd *cobra.Command, args []string) error {
	w, err := core.NewWidget()
	if err != nil {
		return fmt.Errorf("failed to create widget: %w", err)
	}
	var initial string
	if len(args) > 0 {
		initial = args[0]
	}
	return Run(cmd.Context(), w, initial)
}
