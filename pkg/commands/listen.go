package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/commands/options"
	"tableflip.dev/hush/pkg/runner/listen"
	"tableflip.dev/hush/pkg/sound"
)

func addListen(topLevel *cobra.Command) {
	lo := &options.ListenOptions{}

	long := strings.Builder{}
	long.WriteString("Play one ambient loop. Tracks:\n")
	validArgs := make([]string, 0, 3)
	for _, t := range sound.Tracks() {
		long.WriteString(fmt.Sprintf("  %s\n", t))
		validArgs = append(validArgs, string(t))
	}

	cmd := &cobra.Command{
		Use:   "listen <track>",
		Short: "play an ambient sound",
		Long:  long.String(),
		Example: `
hush listen rain
hush listen waves --for 10m
`,
		ValidArgs: validArgs,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("pick one track")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(app.Options{})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := listen.Listen{
				Track:   args[0],
				Window:  lo.Window,
				Service: svc,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddListenArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}
