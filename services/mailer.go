package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/builditdreamz/builditdreamz_backend/config"
	"github.com/builditdreamz/builditdreamz_backend/models"
)

// Mailer delivers a plain-text email
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer sends mail through the configured SMTP relay
type SMTPMailer struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
}

func NewSMTPMailer(cfg config.SMTPConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

// Send dials the relay and sends one message. Failures wrap models.ErrRelay.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", models.ErrRelay, err)
	}
	if m.cfg.Host == "" || m.cfg.User == "" || m.cfg.Pass == "" || m.cfg.From == "" {
		return fmt.Errorf("%w: SMTP configuration is incomplete: check SMTP_HOST, SMTP_USER, SMTP_PASS, and FROM_EMAIL", models.ErrRelay)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Pass)
	if err := d.DialAndSend(msg); err != nil {
		m.logger.Error("failed to send email", zap.String("subject", subject), zap.Error(err))
		return fmt.Errorf("%w: %v", models.ErrRelay, err)
	}

	m.logger.Info("email sent", zap.String("subject", subject))
	return nil
}
