package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/hush/pkg/timeutil"
)

// ListenOptions captures the ambient sound flags.
type ListenOptions struct {
	Window string
}

func AddListenArgs(cmd *cobra.Command, o *ListenOptions) {
	cmd.Flags().StringVar(&o.Window, "for", timeutil.DefaultWindow,
		`How long to play, for example "10m" or "1h". Capped at 30m.`)
}
