// Package ui opens the full-screen interface.
package ui

import (
	"context"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/tui"
)

type UI struct {
	Service *app.Service
}

func (d *UI) Do(ctx context.Context) error {
	return tui.Run(d.Service)
}
