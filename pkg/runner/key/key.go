// Package key prints the legend of moods, message levels, and sounds.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/hush/pkg/glyph"
	"tableflip.dev/hush/pkg/printers"
)

type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	pp := printers.PrettyPrint{}
	pp.Legend(glyph.DefaultGlyphs())
	return nil
}
