// Package feed prints the public review feed.
package feed

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/printers"
)

type Feed struct {
	Service *app.Service
}

func (n *Feed) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not fetch reviews, no service")
	}

	n.Service.Feed.Refresh(ctx)
	entries := n.Service.Feed.Entries()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("What people say", len(entries))
	pp.Feed(entries, n.Service.Clock)
	return nil
}
