package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"fireguard-api/pkg/utils"

	"go.uber.org/zap"
)

// Mailer delivers verification codes. Delivery is best-effort; callers treat
// a failure as a side-channel problem, not a reason to roll anything back.
type Mailer interface {
	SendVerificationCode(to, code string) error
}

// SMTPMailer sends the verification email through a plain SMTP relay.
type SMTPMailer struct {
	config utils.EmailConfig
}

func NewSMTPMailer(config utils.EmailConfig) *SMTPMailer {
	return &SMTPMailer{config: config}
}

func (m *SMTPMailer) SendVerificationCode(to, code string) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)

	from := m.config.From
	if from == "" {
		from = m.config.User
	}

	msg := buildVerificationMessage(from, to, code)

	if err := smtp.SendMail(addr, auth, from, []string{to}, msg); err != nil {
		return fmt.Errorf("send verification email to %s: %w", to, err)
	}

	return nil
}

func buildVerificationMessage(from, to, code string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	b.WriteString("Subject: Verify your FireGuard Account\r\n")
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString("Welcome to FireGuard!\r\n\r\n")
	b.WriteString("Thank you for signing up. Please verify your account using the code below:\r\n\r\n")
	fmt.Fprintf(&b, "    %s\r\n\r\n", code)
	b.WriteString("This code will expire in 10 minutes.\r\n\r\n")
	b.WriteString("Stay safe,\r\nFireGuard Team\r\n")
	return []byte(b.String())
}

// LogMailer logs codes instead of sending mail. Used when SMTP is not
// configured, typically local development.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendVerificationCode(to, code string) error {
	m.log.Info("Verification code generated (SMTP not configured, not sent)",
		zap.String("email", to),
		zap.String("code", code),
	)
	return nil
}
