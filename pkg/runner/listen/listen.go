// Package listen plays one ambient loop for a bounded window.
package listen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/sound"
	"tableflip.dev/hush/pkg/timeutil"
)

type Listen struct {
	Track   string
	Window  string
	Service *app.Service
}

// Do starts the track and holds until the window passes, the playback
// ceiling stops it, or the context is interrupted.
func (n *Listen) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not listen, no service")
	}

	t := sound.Track(n.Track)
	playing, err := n.Service.Player.Toggle(t)
	if err != nil {
		return err
	}
	if !playing {
		fmt.Println("")
		fmt.Println("Stopped.")
		return nil
	}

	window, _, err := timeutil.ParseWindow(n.Window)
	if err != nil {
		return err
	}
	if window > sound.DefaultCeiling {
		window = sound.DefaultCeiling
	}

	fmt.Println("")
	fmt.Printf("Playing %s for %s. Press ctrl-c to stop.\n", t, timeutil.FormatWindow(window))

	timer := time.NewTimer(window)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
	n.Service.Player.StopAll()
	fmt.Println("Stopped.")
	fmt.Println("")
	return nil
}
