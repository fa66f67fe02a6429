// Package write works the private free-writing draft from the console.
package write

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/printers"
)

type Write struct {
	Text    string
	Export  bool
	Clear   bool
	Release bool
	Service *app.Service
}

// Do appends Text to the draft, then prints it with its stats. Export
// downloads the draft to a text file; Clear discards it.
func (n *Write) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not write, no service")
	}

	ed := n.Service.Free
	if err := ed.Load(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	if n.Clear {
		cleared, err := ed.Clear(nil)
		if err != nil {
			return err
		}
		if cleared {
			fmt.Println("Draft cleared.")
		} else {
			fmt.Println("Nothing to clear.")
		}
		fmt.Println("")
		return nil
	}

	if text := strings.TrimRight(n.Text, "\n"); text != "" {
		joined := ed.Text()
		if joined != "" {
			joined += "\n"
		}
		ed.SetText(joined + text)
		n.Service.Inspect(text)
		if err := ed.Flush(); err != nil {
			return err
		}
	}

	if n.Release {
		if err := ed.Release(); err != nil {
			return err
		}
		fmt.Println("Released. Those words stayed with you.")
		fmt.Println("")
		return nil
	}

	if n.Export {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		path, err := ed.Export(dir)
		if err != nil {
			return err
		}
		fmt.Println("Saved to", path)
		fmt.Println("")
		return nil
	}

	pp.Title("Your space")
	if ed.Text() == "" {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" nothing here yet, and that is fine")
	} else {
		_, _ = fmt.Fprintln(color.Output, ed.Text())
	}
	pp.Stats(ed.Stats())
	pp.NewLine()
	return nil
}
