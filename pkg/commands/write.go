package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/commands/options"
	"tableflip.dev/hush/pkg/runner/write"
)

func addWrite(topLevel *cobra.Command) {
	eo := &options.EditorOptions{}

	cmd := &cobra.Command{
		Use:   "write [words...]",
		Short: "add to the private free-writing draft",
		Long: `Everything written here stays on this machine. The draft keeps
itself saved; release it when you are ready to let the words go.`,
		Example: `
hush write
hush write today was heavier than usual
hush write --export
hush write --release
hush write --clear
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(app.Options{})
			if err != nil {
				return err
			}
			s := write.Write{
				Text:    strings.Join(args, " "),
				Export:  eo.Export,
				Clear:   eo.Clear,
				Release: eo.Release,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEditorArgs(cmd, eo)
	cmd.Flags().BoolVar(&eo.Release, "release", false,
		"Let the words go. Clears the draft without sending it anywhere.")

	topLevel.AddCommand(cmd)
}
