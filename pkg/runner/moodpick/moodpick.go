// Package moodpick records or shows the mood of the day.
package moodpick

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/mood"
	"tableflip.dev/hush/pkg/printers"
)

type MoodPick struct {
	Mood    string
	Service *app.Service
}

func (n *MoodPick) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not record mood, no service")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	if n.Mood == "" {
		m, selected, err := n.Service.Moods.Current()
		if err != nil {
			return err
		}
		pp.Title("How are you feeling today?")
		pp.Mood(string(m), selected)
		pp.NewLine()
		return nil
	}

	m := mood.Mood(n.Mood)
	if err := n.Service.Moods.Select(m); err != nil {
		return err
	}

	g := m.Glyph()
	_, _ = fmt.Fprintf(color.Output, "%s  noted. Thank you for checking in.\n\n", g.Symbol)
	return nil
}
