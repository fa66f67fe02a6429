// Package printers renders hush state on the console.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/hush/pkg/draft"
	"tableflip.dev/hush/pkg/glyph"
	"tableflip.dev/hush/pkg/review"
	"tableflip.dev/hush/pkg/safety"
	"tableflip.dev/hush/pkg/timeutil"
	"tableflip.dev/hush/pkg/timers"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Stats prints one word/char/elapsed line for an editor.
func (pp *PrettyPrint) Stats(s draft.Stats) {
	f := color.New(color.Faint)
	_, _ = f.Printf("words: %d  chars: %d  time: %s\n",
		s.Words, s.Chars, timeutil.FormatClock(s.Elapsed))
}

// Mood prints today's selection, or a faint placeholder.
func (pp *PrettyPrint) Mood(key string, selected bool) {
	if !selected {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no mood recorded today")
		return
	}
	g := glyph.ForKey(key)
	_, _ = fmt.Fprintf(color.Output, "%s  %s\n", g.Symbol, g.Meaning)
}

// Feed renders the review feed with relative timestamps.
func (pp *PrettyPrint) Feed(entries []review.Entry, clock timers.Clock) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("When"), bold.Sprint("From"), "", bold.Sprint("Words"), bold.Sprint("Helpful"))
	for _, e := range entries {
		tbl.AddRow(
			timeutil.Ago(e.Timestamp, clock.Now()),
			e.Name,
			e.Emoji,
			e.Text,
			fmt.Sprintf("♥ %d", e.Likes),
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Legend renders the glyph key grouped by kind.
func (pp *PrettyPrint) Legend(glyphs []glyph.Glyph) {
	bold := color.New(color.Bold)

	headings := map[glyph.Kind]string{
		glyph.KindMood:     "Moods",
		glyph.KindSeverity: "Messages",
		glyph.KindSound:    "Sounds",
	}
	for _, kind := range []glyph.Kind{glyph.KindMood, glyph.KindSeverity, glyph.KindSound} {
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold.Sprint(headings[kind]), bold.Sprint("Meaning"))
		for _, g := range glyphs {
			if g.Kind == kind {
				tbl.AddRow(fmt.Sprintf("%s %s", g.Symbol, g.Key), g.Meaning)
			}
		}
		tbl.RightAlign(0)
		_, _ = fmt.Fprintln(color.Output, tbl)
		pp.NewLine()
	}
}

// Resource renders the crisis notice on the console.
func (pp *PrettyPrint) Resource(r safety.Resource) {
	red := color.New(color.FgRed, color.Bold)
	bold := color.New(color.Bold)

	line := strings.Repeat("─", 46)
	_, _ = fmt.Fprintln(color.Output, line)
	_, _ = red.Println("🚨 " + r.Heading)
	_, _ = fmt.Fprintln(color.Output, r.Body)
	_, _ = bold.Printf("\n    call %s\n\n", r.Helpline)
	_, _ = fmt.Fprintln(color.Output, line)
}
