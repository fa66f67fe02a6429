package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/runner/breathe"
)

func addBreathe(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "breathe",
		Short: "run the one-minute guided breathing exercise",
		Example: `
hush breathe
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(app.Options{})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := breathe.Breathe{Service: svc}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
