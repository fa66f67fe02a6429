// Package info shows where hush keeps its data and what it holds.
package info

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/printers"
	"tableflip.dev/hush/pkg/profile"
	"tableflip.dev/hush/pkg/timeutil"
)

type Info struct {
	Config  profile.Config
	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {
	if override := os.Getenv("HUSH_CONFIG_PATH"); override != "" {
		fmt.Println("HUSH_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("HUSH_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = profile.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.BasePath())
	fmt.Println("Config.backend: ", n.Config.Backend())

	if n.Service == nil {
		return fmt.Errorf("failed to create the service")
	}

	p, err := n.Service.Store.Get()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Profile")
	if p.Name != "" {
		fmt.Printf("  name: %s\n", p.Name)
	}
	fmt.Printf("  theme: %s\n", p.Theme)
	fmt.Printf("  reviews shared: %d\n", p.ReviewCount)
	fmt.Printf("  thoughts shared: %d\n", p.ShareCount)
	if !p.LastVisit.IsZero() {
		fmt.Printf("  last visit: %s\n", timeutil.Ago(p.LastVisit, n.Service.Clock.Now()))
	}

	fmt.Println("")
	pp.Title("Today")
	m, selected, err := n.Service.Moods.Current()
	if err != nil {
		return err
	}
	pp.Mood(string(m), selected)

	hist := n.Service.Store.History()
	fmt.Println("")
	pp.TitleWithCount("History", len(hist))
	shown := hist
	if len(shown) > 5 {
		shown = shown[len(shown)-5:]
	}
	for _, h := range shown {
		fmt.Printf("  %s  %s", h.Page, h.Action)
		fmt.Printf("  (%s)\n", timeutil.Ago(h.Timestamp, n.Service.Clock.Now()))
	}
	fmt.Println("")
	return nil
}
