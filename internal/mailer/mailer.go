// Copyright (c) 2026 The Blog API Authors. All rights reserved.

/*
Package mailer implements the outbound delivery channel for account
credentials.

The registrar hands a newly generated password to this channel; if delivery
fails, the registration is aborted so the system never holds an account whose
password nobody received.

No third-party SMTP client is used: the dependency surface of a credential
mail is a single authenticated SMTP round-trip, which net/smtp covers.
*/
package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Mailer is the delivery-channel contract consumed by the account registrar.
type Mailer interface {
	// Send delivers one message. Any failure means the message must be
	// treated as not delivered — there is no partial success.
	Send(toName, toEmail, subject, body string) error
}

// SMTPMailer sends mail through a single configured SMTP relay.
type SMTPMailer struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
	logger    *slog.Logger
}

// SMTPConfig holds the relay settings, taken from process-wide configuration.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// NewSMTPMailer constructs a mailer for the given relay.
func NewSMTPMailer(cfg SMTPConfig, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:      cfg.Host,
		port:      cfg.Port,
		username:  cfg.Username,
		password:  cfg.Password,
		fromName:  cfg.FromName,
		fromEmail: cfg.FromEmail,
		logger:    logger,
	}
}

// Send delivers a single HTML message through the configured relay.
//
// # Secrecy
//
// The body of a credential mail contains a plaintext password, so neither
// the body nor the subject is ever logged — only the recipient address and
// the outcome.
func (mailer *SMTPMailer) Send(toName, toEmail, subject, body string) error {
	message := buildMessage(mailer.fromName, mailer.fromEmail, toName, toEmail, subject, body)

	address := fmt.Sprintf("%s:%d", mailer.host, mailer.port)

	var auth smtp.Auth
	if mailer.username != "" {
		auth = smtp.PlainAuth("", mailer.username, mailer.password, mailer.host)
	}

	if err := smtp.SendMail(address, auth, mailer.fromEmail, []string{toEmail}, message); err != nil {
		mailer.logger.Error("mail_delivery_failed",
			slog.String("to", toEmail),
			slog.Any("error", err),
		)
		return fmt.Errorf("mailer: delivery to %s failed: %w", toEmail, err)
	}

	mailer.logger.Info("mail_delivered", slog.String("to", toEmail))
	return nil
}

// buildMessage assembles a minimal RFC 5322 HTML message.
func buildMessage(fromName, fromEmail, toName, toEmail, subject, body string) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s <%s>\r\n", fromName, fromEmail)
	fmt.Fprintf(&b, "To: %s <%s>\r\n", toName, toEmail)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	return []byte(b.String())
}
