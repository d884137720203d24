package alerts

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// EmailNotifier sends the notification over SMTP with the report
// file attached. STARTTLS is negotiated automatically on the
// standard submission port.
type EmailNotifier struct {
	dialer     *gomail.Dialer
	from       string
	recipients []string
}

// NewEmailNotifier creates an SMTP notifier. An empty from address
// falls back to the username.
func NewEmailNotifier(host string, port int, username, password, from string, recipients []string) *EmailNotifier {
	if from == "" {
		from = username
	}
	return &EmailNotifier{
		dialer:     gomail.NewDialer(host, port, username, password),
		from:       from,
		recipients: recipients,
	}
}

func (e *EmailNotifier) Name() string { return "email" }

func (e *EmailNotifier) Send(ctx context.Context, n Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := e.dialer.DialAndSend(e.buildMessage(n)); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

func (e *EmailNotifier) buildMessage(n Notification) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", e.from)
	msg.SetHeader("To", e.recipients...)
	msg.SetHeader("Subject", n.Subject)
	msg.SetBody("text/plain", n.Body)
	if n.ReportPath != "" {
		msg.Attach(n.ReportPath)
	}
	return msg
}
