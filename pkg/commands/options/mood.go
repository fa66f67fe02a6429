// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// MoodOptions captures the mood selection flags.
type MoodOptions struct {
	Interactive bool
}

// InteractiveArgs wires the prompt-driven selection flag.
func InteractiveArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		"Pick interactively instead of passing a value.")
}
