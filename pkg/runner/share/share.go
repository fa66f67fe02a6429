// Package share submits the share draft, publicly or kept private.
package share

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/backend"
	"tableflip.dev/hush/pkg/draft"
	"tableflip.dev/hush/pkg/notify"
)

type Share struct {
	Text    string
	Privacy string
	Service *app.Service
}

// Do submits the share draft. Text, when given, replaces the draft
// first. Private shares never leave the machine.
func (n *Share) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not share, no service")
	}

	ed := n.Service.Share
	if err := ed.Load(); err != nil {
		return err
	}
	if text := strings.TrimSpace(n.Text); text != "" {
		ed.SetText(text)
		n.Service.Inspect(text)
	}

	privacy := draft.Privacy(n.Privacy)
	switch privacy {
	case "":
		privacy = draft.PrivacyPrivate
	case draft.PrivacyPrivate, draft.PrivacyPublic:
	default:
		return fmt.Errorf("unknown privacy %q, use private or public", n.Privacy)
	}

	m := n.Service.Moods.CurrentOrNeutral()

	fmt.Println("")
	transmitted, err := ed.Share(ctx, draft.ShareRequest{
		Privacy: privacy,
		Mood:    string(m),
		Client:  n.Service.Backend,
		Busy:    notify.NopBusy{},
	})
	switch {
	case errors.Is(err, draft.ErrEmpty):
		return errors.New("there is nothing to share yet")
	case errors.Is(err, backend.ErrUnavailable):
		return errors.New("could not reach the listener, your words are still saved here")
	case err != nil:
		return err
	}

	if transmitted {
		fmt.Println("Shared. Someone out there will read it.")
	} else {
		fmt.Println("Kept private. The draft has been let go.")
	}
	fmt.Println("")
	return nil
}
