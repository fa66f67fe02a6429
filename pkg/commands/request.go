package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/commands/options"
	"tableflip.dev/hush/pkg/runner/requestform"
)

func addRequest(topLevel *cobra.Command) {
	ro := &options.RequestOptions{}

	cmd := &cobra.Command{
		Use:   "request",
		Short: "ask for a session with a listener",
		Long: `Sends a session request to the listener. If the listener cannot be
reached, a prefilled mailto link is offered instead.`,
		Example: `
hush request -i
hush request --type listening --via email --email you@example.com
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(app.Options{})
			if err != nil {
				return err
			}
			s := requestform.RequestForm{
				Form:        ro.Form(),
				Interactive: ro.Interactive,
				Service:     svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddRequestArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
