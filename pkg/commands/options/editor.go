package options

import (
	"github.com/spf13/cobra"
)

// EditorOptions captures the draft editor flags shared by write and
// share commands.
type EditorOptions struct {
	Export  bool
	Clear   bool
	Release bool
}

func AddEditorArgs(cmd *cobra.Command, o *EditorOptions) {
	cmd.Flags().BoolVar(&o.Export, "export", false,
		"Save the draft as a text file in the working directory.")
	cmd.Flags().BoolVar(&o.Clear, "clear", false,
		"Discard the draft.")
}

// PrivacyOptions captures the privacy flag for share and review.
type PrivacyOptions struct {
	Privacy string
	Name    string
}

func AddPrivacyArg(cmd *cobra.Command, o *PrivacyOptions, usage string) {
	cmd.Flags().StringVarP(&o.Privacy, "privacy", "p", "", usage)
}

func AddNameArg(cmd *cobra.Command, o *PrivacyOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"Sign with this name instead of staying anonymous.")
}
