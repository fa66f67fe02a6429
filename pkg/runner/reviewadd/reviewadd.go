// Package reviewadd submits one experience review.
package reviewadd

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/backend"
	"tableflip.dev/hush/pkg/notify"
	"tableflip.dev/hush/pkg/review"
)

type ReviewAdd struct {
	Text    string
	Privacy string
	Name    string
	Service *app.Service
}

func (n *ReviewAdd) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not review, no service")
	}

	privacy := review.Privacy(n.Privacy)
	switch privacy {
	case "":
		privacy = review.PrivacyAnonymous
	case review.PrivacyAnonymous, review.PrivacyNamed, review.PrivacyPublic:
	default:
		return fmt.Errorf("unknown privacy %q, use anonymous, named, or public", n.Privacy)
	}

	m := n.Service.Moods.CurrentOrNeutral()
	sub := review.Submission{
		Text:    n.Text,
		Privacy: privacy,
		Name:    n.Name,
		Emoji:   m.Glyph().Symbol,
		Mood:    string(m),
	}

	fmt.Println("")
	err := n.Service.Reviews.Submit(ctx, sub, notify.NopBusy{})
	switch {
	case errors.Is(err, review.ErrEmpty):
		return errors.New("write a few words first")
	case errors.Is(err, review.ErrTooLong):
		return fmt.Errorf("reviews are capped at %d characters", review.MaxLen)
	case errors.Is(err, backend.ErrUnavailable):
		return errors.New("could not reach the listener, please try again later")
	case err != nil:
		return err
	}

	fmt.Println("Thank you. Your review helps others take the first step.")
	fmt.Println("")
	return nil
}
