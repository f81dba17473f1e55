package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/mado-app/mado/internal/shared/config"
	"github.com/mado-app/mado/internal/shared/logger"
)

// Sender delivers transactional email.
type Sender interface {
	SendWelcome(to, name string) error
}

// SMTPSender sends mail through the configured SMTP relay. When email is
// disabled in config it logs and drops the message instead.
type SMTPSender struct {
	cfg config.EmailConfig
	log logger.Interface
}

func NewSMTPSender(cfg config.EmailConfig, log logger.Interface) *SMTPSender {
	return &SMTPSender{cfg: cfg, log: log.Named("email")}
}

func (s *SMTPSender) SendWelcome(to, name string) error {
	if !s.cfg.Enabled {
		s.log.Debugw("email disabled, skipping welcome message", "to", to)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Welcome to Mado")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nWelcome to Mado. Your account is ready; sign in to start reading and publishing stories.\n\nThe Mado team",
		name,
	))

	dialer := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	s.log.Infow("welcome email sent", "to", to)
	return nil
}
