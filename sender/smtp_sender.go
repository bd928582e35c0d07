package sender

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"github.com/google/uuid"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

type SMTPSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP_HOST not set")
	}
	if cfg.Port == "" {
		return nil, fmt.Errorf("SMTP_PORT not set")
	}
	return &SMTPSender{cfg: cfg}, nil
}

func (s *SMTPSender) SendEmail(ctx context.Context, msg Message) (SendResult, error) {
	if err := ctx.Err(); err != nil {
		return SendResult{}, err
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, msg.From, []string{msg.To}, msg.bytes()); err != nil {
		return SendResult{}, fmt.Errorf("smtp send failed: %w", err)
	}

	return SendResult{MessageID: "smtp-" + uuid.NewString(), SentAt: time.Now()}, nil
}
