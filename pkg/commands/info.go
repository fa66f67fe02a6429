package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/commands/options"
	"tableflip.dev/hush/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "show where hush keeps its data",
		Example: `
hush info
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(app.Options{})
			if err != nil {
				return err
			}
			s := info.Info{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
