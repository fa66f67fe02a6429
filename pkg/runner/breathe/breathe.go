// Package breathe runs the guided breathing exercise on the console.
package breathe

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/breath"
)

type Breathe struct {
	Service *app.Service
}

// Do runs one full exercise, printing each phase change. Interrupting
// the context stops the session early.
func (n *Breathe) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not breathe, no service")
	}

	s := n.Service.Breathing
	if s.Running() {
		return errors.New("a session is already running")
	}

	done := make(chan bool, 1)
	var last breath.Phase

	faint := color.New(color.Faint)
	s.Observer = breath.Observer{
		OnPhase: func(p breath.Phase, elapsed int) {
			if p != last {
				last = p
				_, _ = fmt.Fprintf(color.Output, "\n%s", p.Label())
			} else {
				_, _ = faint.Print(" .")
			}
		},
		OnStop: func(completed bool) {
			done <- completed
		},
	}

	fmt.Println("")
	fmt.Println("Follow the rhythm. The exercise ends on its own.")
	s.Toggle()

	select {
	case completed := <-done:
		fmt.Println("")
		if completed {
			fmt.Println("Well done. Take that calm with you.")
		} else {
			fmt.Println("Session stopped.")
		}
	case <-ctx.Done():
		s.Stop()
		<-done
		fmt.Println("")
		fmt.Println("Session stopped.")
	}
	fmt.Println("")
	return nil
}
