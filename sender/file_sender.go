package sender

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileSender writes each message as an .eml file into a pickup directory
// instead of delivering it.
type FileSender struct {
	dir string
}

func NewFileSender(dir string) (*FileSender, error) {
	if dir == "" {
		return nil, fmt.Errorf("mail file location not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create mail directory: %w", err)
	}
	return &FileSender{dir: dir}, nil
}

func (s *FileSender) SendEmail(ctx context.Context, msg Message) (SendResult, error) {
	if err := ctx.Err(); err != nil {
		return SendResult{}, err
	}

	id := uuid.NewString()
	path := filepath.Join(s.dir, id+".eml")
	if err := os.WriteFile(path, msg.bytes(), 0o644); err != nil {
		return SendResult{}, fmt.Errorf("write mail file: %w", err)
	}
	return SendResult{MessageID: "file-" + id, SentAt: time.Now()}, nil
}
