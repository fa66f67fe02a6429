package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/commands/options"
	"tableflip.dev/hush/pkg/runner/feed"
	"tableflip.dev/hush/pkg/runner/reviewadd"
)

func addReview(topLevel *cobra.Command) {
	po := &options.PrivacyOptions{}

	cmd := &cobra.Command{
		Use:   "review [words...]",
		Short: "leave a review of your experience",
		Example: `
hush review this helped me breathe again
hush review --privacy named --name Ayesha this helped
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("write a few words first")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(app.Options{})
			if err != nil {
				return err
			}
			s := reviewadd.ReviewAdd{
				Text:    strings.Join(args, " "),
				Privacy: po.Privacy,
				Name:    po.Name,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddPrivacyArg(cmd, po, "Privacy: anonymous (default), named, or public.")
	options.AddNameArg(cmd, po)

	topLevel.AddCommand(cmd)
}

func addReviews(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "read what others say",
		Example: `
hush reviews
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(app.Options{})
			if err != nil {
				return err
			}
			s := feed.Feed{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
