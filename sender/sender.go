package sender

import (
	"context"
	"time"
)

type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Message is a plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

type EmailSender interface {
	SendEmail(ctx context.Context, msg Message) (SendResult, error)
}

func (m Message) bytes() []byte {
	return []byte(
		"From: " + m.From + "\r\n" +
			"To: " + m.To + "\r\n" +
			"Subject: " + m.Subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n" +
			"\r\n" +
			m.Body,
	)
}
