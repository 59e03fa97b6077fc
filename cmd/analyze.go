package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-yaml"
	"github.com/krau/SiteLens/core"
	"github.com/krau/SiteLens/pkg/display"
	"github.com/krau/SiteLens/pkg/enums/format"
	"github.com/krau/SiteLens/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <site-url>",
	Short: "Fetch a site manifest and print its overview and cards",
	Args:  cobra.ExactArgs(1),
	RunE:  Analyze,
}

func init() {
	analyzeCmd.Flags().StringP("format", "f", string(format.Text), "output format ("+strings.Join(format.FormatNames(), ", ")+")")
	analyzeCmd.Flags().IntP("width", "w", 0, "render width for text output, defaults to the terminal width")
	rootCmd.AddCommand(analyzeCmd)
}

func Analyze(cmd *cobra.Command, args []string) error {
	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	outFormat, err := format.Lookup(formatName)
	if err != nil {
		return err
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	w, err := core.NewWidget()
	if err != nil {
		return err
	}
	res, err := w.Submit(ctx, args[0])
	if err != nil {
		log.FromContext(ctx).Debug("Analysis failed", "error", err)
		return errors.New(core.UserMessage(err))
	}
	return writeModel(cmd.OutOrStdout(), res.Model, outFormat, width)
}

func writeModel(out io.Writer, m *display.Model, f format.Format, width int) error {
	switch f {
	case format.JSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case format.YAML:
		data, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = out.Write(data)
		return err
	default:
		if width <= 0 {
			width = terminalWidth(out)
		}
		_, err := fmt.Fprintln(out, render.New(width).Render(m))
		return err
	}
}

func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return render.DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return render.DefaultWidth
	}
	return width
}
