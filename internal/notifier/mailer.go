package notifier

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog/log"

	"github.com/evermeet/booking-go/internal/application"
	"github.com/evermeet/booking-go/internal/config"
)

// Mailer renders and sends the emails behind a config's
// emailNotifications flags.
type Mailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewMailer() *Mailer {
	return &Mailer{
		host: config.SMTPHost,
		port: config.SMTPPort,
		user: config.SMTPUser,
		pass: config.SMTPPass,
		from: config.MailFrom,
	}
}

// Send emails everyone the notification names. One failing recipient
// does not block the other.
func (m *Mailer) Send(n application.Notification) error {
	var firstErr error
	if n.ParticipantEmail != "" {
		subject, body := participantMessage(n)
		if err := m.send(n.ParticipantEmail, subject, body); err != nil {
			firstErr = err
		}
	}
	if n.VendorEmail != "" {
		subject, body := vendorMessage(n)
		if err := m.send(n.VendorEmail, subject, body); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func participantMessage(n application.Notification) (string, string) {
	switch n.Kind {
	case application.NotifySubmitted:
		return fmt.Sprintf("Registration received for %s", n.EventTitle),
			fmt.Sprintf("Hi %s,\n\nYour registration for %q has been received and is currently %s.\n", n.ParticipantName, n.EventTitle, n.Status)
	case application.NotifyReviewed:
		body := fmt.Sprintf("Hi %s,\n\nYour registration for %q is now %s.\n", n.ParticipantName, n.EventTitle, n.Status)
		if n.Remarks != "" {
			body += fmt.Sprintf("\nReviewer remarks: %s\n", n.Remarks)
		}
		return fmt.Sprintf("Registration %s for %s", n.Status, n.EventTitle), body
	default:
		return fmt.Sprintf("Registration update for %s", n.EventTitle),
			fmt.Sprintf("Your registration for %q is now %s.\n", n.EventTitle, n.Status)
	}
}

func vendorMessage(n application.Notification) (string, string) {
	return fmt.Sprintf("New registration for %s", n.EventTitle),
		fmt.Sprintf("%s submitted a registration for %q (status: %s).\n", n.ParticipantName, n.EventTitle, n.Status)
}

func (m *Mailer) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)

	addr := m.host + ":" + m.port
	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		log.Warn().Err(err).Str("to", to).Msg("failed to send email")
		return fmt.Errorf("send email: %w", err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}
