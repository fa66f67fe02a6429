// Package requestform submits a session request, prompting for any
// field not given on the command line.
package requestform

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"tableflip.dev/hush/pkg/app"
	"tableflip.dev/hush/pkg/backend"
	"tableflip.dev/hush/pkg/notify"
	"tableflip.dev/hush/pkg/request"
	"tableflip.dev/hush/pkg/router"
)

type RequestForm struct {
	Form        request.Form
	Interactive bool
	Service     *app.Service
}

func (n *RequestForm) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not request a session, no service")
	}

	if n.Interactive {
		if err := n.prompt(); err != nil {
			return err
		}
	}

	p, err := n.Service.Store.Get()
	if err != nil {
		return err
	}
	if strings.TrimSpace(n.Form.Name) == "" {
		n.Form.Name = p.Name
	}

	fmt.Println("")
	err = n.Service.Requests.Submit(ctx, n.Form, p.Theme, string(router.Sessions), notify.NopBusy{})
	switch {
	case request.IsValidation(err):
		return err
	case errors.Is(err, backend.ErrUnavailable):
		fmt.Println("The listener could not be reached right now.")
		fmt.Println("You can send the same details by email instead:")
		fmt.Println("")
		_, _ = color.New(color.Bold).Println("  " + request.MailtoFallback(n.Form))
		fmt.Println("")
		return nil
	case err != nil:
		return err
	}

	fmt.Println("Request received. A listener will reach out soon.")
	fmt.Println("")
	return nil
}

func (n *RequestForm) prompt() error {
	if strings.TrimSpace(n.Form.SessionType) == "" {
		sel := promptui.Select{
			Label: "What kind of session",
			Items: []string{"listening", "guidance", "check-in"},
		}
		_, choice, err := sel.Run()
		if err != nil {
			return err
		}
		n.Form.SessionType = choice
	}

	if n.Form.ContactMethod == "" {
		sel := promptui.Select{
			Label: "How should we reach you",
			Items: []string{string(request.ContactTelegram), string(request.ContactEmail)},
		}
		_, choice, err := sel.Run()
		if err != nil {
			return err
		}
		n.Form.ContactMethod = request.ContactMethod(choice)
	}

	switch n.Form.ContactMethod {
	case request.ContactTelegram:
		if strings.TrimSpace(n.Form.Telegram) == "" {
			p := promptui.Prompt{Label: "Telegram handle"}
			v, err := p.Run()
			if err != nil {
				return err
			}
			n.Form.Telegram = v
		}
	case request.ContactEmail:
		if strings.TrimSpace(n.Form.Email) == "" {
			p := promptui.Prompt{Label: "Email address"}
			v, err := p.Run()
			if err != nil {
				return err
			}
			n.Form.Email = v
		}
	}
	return nil
}
