//go:build no_bubbletea

package inspect

import (
	"context"
	"errors"

	"github.com/krau/SiteLens/pkg/widget"
)

var errNoTUI = errors.New("interactive mode is not available in this build")

func Run(ctx context.Context, w *widget.Widget, initial string) error {
	return errNoTUI
}
