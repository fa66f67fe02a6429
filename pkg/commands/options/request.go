package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/hush/pkg/request"
)

// RequestOptions captures the session request form flags.
type RequestOptions struct {
	Name          string
	SessionType   string
	ContactMethod string
	Telegram      string
	Email         string
	Message       string
	PreferredTime string
	Interactive   bool
}

func AddRequestArgs(cmd *cobra.Command, o *RequestOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "", "Your name (optional).")
	cmd.Flags().StringVar(&o.SessionType, "type", "",
		"Kind of session: listening, guidance, or check-in.")
	cmd.Flags().StringVar(&o.ContactMethod, "via", "",
		"Contact method: telegram or email.")
	cmd.Flags().StringVar(&o.Telegram, "telegram", "", "Telegram handle.")
	cmd.Flags().StringVar(&o.Email, "email", "", "Email address.")
	cmd.Flags().StringVarP(&o.Message, "message", "m", "",
		"Anything you want the listener to know (optional).")
	cmd.Flags().StringVar(&o.PreferredTime, "when", "",
		"Preferred time, free form (optional).")
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		"Prompt for any missing field.")
}

// Form converts the flags into the validated form shape.
func (o *RequestOptions) Form() request.Form {
	return request.Form{
		Name:          o.Name,
		SessionType:   o.SessionType,
		ContactMethod: request.ContactMethod(o.ContactMethod),
		Telegram:      o.Telegram,
		Email:         o.Email,
		Message:       o.Message,
		PreferredTime: o.PreferredTime,
	}
}
