package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/commands/options"
	"tableflip.dev/hush/pkg/runner/share"
)

func addShare(topLevel *cobra.Command) {
	po := &options.PrivacyOptions{}

	cmd := &cobra.Command{
		Use:   "share [words...]",
		Short: "share a thought, publicly or kept private",
		Long: `Private shares never leave this machine; public ones travel to the
listener with today's mood attached.`,
		Example: `
hush share it does get lighter
hush share --privacy public it does get lighter
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(app.Options{})
			if err != nil {
				return err
			}
			s := share.Share{
				Text:    strings.Join(args, " "),
				Privacy: po.Privacy,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddPrivacyArg(cmd, po, "Privacy: private (default) or public.")

	topLevel.AddCommand(cmd)
}
