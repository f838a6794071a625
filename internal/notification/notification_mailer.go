package notification

import (
	"context"

	"gopkg.in/gomail.v2"
)

type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

//go:generate mockgen -source=notification_mailer.go -destination=mock/notification_mailer_mock.go -package=mock
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type SMTPMailer struct {
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)}
}

// Send opens one SMTP session per message. gomail has no context support, so
// cancellation is only honoured before dialing.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", msg.From)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)

	return m.dialer.DialAndSend(gm)
}
