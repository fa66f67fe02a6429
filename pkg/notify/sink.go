package notify

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/hush/pkg/glyph"
)

// Console renders notifications as colored lines on stdout.
type Console struct{}

func (Console) Show(n Notification) {
	var c *color.Color
	switch n.Severity {
	case Success:
		c = color.New(color.FgGreen)
	case Warning:
		c = color.New(color.FgYellow)
	case Error:
		c = color.New(color.FgRed, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}
	_, _ = fmt.Fprintln(color.Output, c.Sprintf("%s %s", glyph.ForKey(string(n.Severity)).Symbol, n.Message))
}

func (Console) Clear() {}

// Recorder captures notifications for tests and the TUI.
type Recorder struct {
	Shown   []Notification
	Cleared int
}

func (r *Recorder) Show(n Notification) { r.Shown = append(r.Shown, n) }
func (r *Recorder) Clear()              { r.Cleared++ }

// Last returns the most recent notification shown.
func (r *Recorder) Last() (Notification, bool) {
	if len(r.Shown) == 0 {
		return Notification{}, false
	}
	return r.Shown[len(r.Shown)-1], true
}
