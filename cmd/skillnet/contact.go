package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ha1tch/skillnet/internal/config"
	"github.com/ha1tch/skillnet/internal/ui"
	"github.com/ha1tch/skillnet/pkg/contact"
)

func contactCmd(a *app) *cobra.Command {
	var (
		form    contact.Form
		dryRun  bool
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Fill in and send the contact form",
		Long: `Contact prompts for any field not given as a flag, validates the form
the same way the page does, and sends it through EmailJS. Credentials
come from the [contact] section of the settings file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, field := range contact.Fields {
				if form.Get(field) != "" {
					continue
				}
				v, err := promptField(field)
				if err != nil {
					return err
				}
				form.Set(field, v)
			}

			var sender contact.Sender
			cc := a.cfg.Contact
			if dryRun {
				sender = contact.SenderFunc(func(ctx context.Context, p contact.Payload) error {
					ui.Subtle.Printf("  to:      %s\n  from:    %s <%s>\n  subject: %s\n\n%s\n\n",
						p.ToEmail, p.FromName, p.FromEmail, p.Subject, p.Message)
					return nil
				})
			} else {
				ej := &contact.EmailJS{
					Endpoint:   cc.Endpoint,
					ServiceID:  cc.ServiceID,
					TemplateID: cc.TemplateID,
					PublicKey:  cc.PublicKey,
				}
				if !ej.Configured() {
					return fmt.Errorf("emailjs is not configured: set [contact] in %s or use --dry-run", config.Path())
				}
				sender = ej
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			res := contact.Submit(ctx, sender, &form, cc.ToEmail)

			for _, field := range contact.Fields {
				if msg, ok := res.Errors[field]; ok {
					fmt.Printf("  %s %s\n", ui.Warn.Sprintf("%-8s", field), msg)
				}
			}
			if res.Err != nil {
				a.log.Error("contact send failed", "id", res.ID, "err", res.Err)
			} else if res.Sent {
				a.log.Debug("contact sent", "id", res.ID)
			}
			ui.Noticef(res.Notice.Kind == contact.NoticeSuccess, "%s", res.Notice.Message)
			if !res.Sent {
				return errors.New(res.ButtonText)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.Name, "name", "", "Your name")
	f.StringVar(&form.Email, "email", "", "Your email address")
	f.StringVar(&form.Subject, "subject", "", "Subject")
	f.StringVarP(&form.Message, "message", "m", "", "Message")
	f.BoolVar(&dryRun, "dry-run", false, "Print the message instead of sending it")
	f.DurationVar(&timeout, "timeout", 15*time.Second, "Send timeout")
	return cmd
}

func promptField(field string) (string, error) {
	p := promptui.Prompt{
		Label: fieldLabel(field),
		Validate: func(s string) error {
			if msg := contact.ValidateField(field, s); msg != "" {
				return errors.New(msg)
			}
			return nil
		},
	}
	return p.Run()
}

func fieldLabel(field string) string {
	switch field {
	case contact.FieldName:
		return "Name"
	case contact.FieldEmail:
		return "Email"
	case contact.FieldSubject:
		return "Subject"
	default:
		return "Message"
	}
}
