package mailing

import (
	"fmt"
	"prep-scheduler/internal/utils"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func (c MailConfig) Enabled() bool {
	return c.SMTPHost != "" && c.SMTPPort != "" && c.SMTPEmail != ""
}

// Message is an outgoing HTML mail with a plain-text alternative.
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

func (c MailConfig) compose(msg Message) *gomail.Message {
	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", c.SMTPEmail, c.SMTPSender)
	mailer.SetHeader("To", msg.To...)
	mailer.SetHeader("Subject", msg.Subject)
	if msg.TextBody != "" {
		mailer.SetBody("text/plain", msg.TextBody)
		mailer.AddAlternative("text/html", msg.HTMLBody)
	} else {
		mailer.SetBody("text/html", msg.HTMLBody)
	}
	return mailer
}

func SendMail(cfg MailConfig, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("mail %q has no recipients", msg.Subject)
	}
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT %q: %w", cfg.SMTPPort, err)
	}
	dialer := gomail.NewDialer(
		cfg.SMTPHost,
		port,
		cfg.SMTPEmail,
		cfg.SMTPPassword,
	)

	return dialer.DialAndSend(cfg.compose(msg))
}
