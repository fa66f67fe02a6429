package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/commands/options"
	"tableflip.dev/hush/pkg/mood"
	"tableflip.dev/hush/pkg/runner/moodpick"
)

func addMood(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}

	long := strings.Builder{}
	long.WriteString("Record how today feels, or show the current selection.\n\n")
	long.WriteString("Values:\n")

	validArgs := make([]string, 0, 4)
	for _, v := range mood.Values() {
		g := v.Glyph()
		long.WriteString(fmt.Sprintf("%s: %s\n", g.Symbol, v))
		validArgs = append(validArgs, string(v))
	}

	cmd := &cobra.Command{
		Use:   "mood [value]",
		Short: "check in with today's mood",
		Long:  long.String(),
		Example: `
hush mood
hush mood anxious
hush mood -i
`,
		ValidArgs: validArgs,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("one mood at a time")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(app.Options{})
			if err != nil {
				return err
			}

			picked := ""
			if len(args) == 1 {
				picked = args[0]
			}
			if picked == "" && mo.Interactive {
				picked, err = promptMood()
				if err != nil {
					return err
				}
			}

			s := moodpick.MoodPick{
				Mood:    picked,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.InteractiveArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}

func promptMood() (string, error) {
	values := mood.Values()
	items := make([]string, 0, len(values))
	for _, v := range values {
		items = append(items, fmt.Sprintf("%s  %s", v.Glyph().Symbol, v))
	}

	prompt := promptui.Select{
		HideHelp: true,
		Label:    "How are you feeling today",
		Items:    items,
		Size:     len(items),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return string(values[i]), nil
}
