package services

import (
	"fmt"
	"log"
	"net/smtp"

	"placement-portal/config"
)

// Mailer sends plain-text mail over SMTP. With no host configured it only
// logs, which keeps local development working without a mail account.
type Mailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewMailer(cfg config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	if m.host == "" {
		log.Printf("mail (smtp disabled) to=%s subject=%q", to, subject)
		return nil
	}

	message := fmt.Sprintf("From: %s\nTo: %s\nSubject: %s\n\n%s", m.from, to, subject, body)
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.user, []string{to}, []byte(message))
}
