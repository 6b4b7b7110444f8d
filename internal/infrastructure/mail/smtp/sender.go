// Package smtp delivers drafted replies through a configured SMTP relay.
package smtp

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

type Config struct {
	Host     string
	Port     string
	From     string
	Username string
	Password string
}

type Sender struct {
	cfg Config
}

func NewSender(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

// Send delivers one message. net/smtp has no context support, so ctx is only
// consulted before dialing; the connection timeout is the transport's.
func (s *Sender) Send(ctx context.Context, recipient, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.cfg.Host == "" {
		return fmt.Errorf("smtp transport is not configured")
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	msg := buildMessage(s.cfg.From, recipient, subject, body)
	addr := s.cfg.Host + ":" + s.cfg.Port
	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{recipient}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", recipient, err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}
