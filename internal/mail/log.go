package mail

import (
	"context"

	"github.com/Dolapo001/SPAS/internal/logger"
)

// LogDialer writes messages to the log instead of delivering them. It is
// selected when no SMTP host is configured.
type LogDialer struct{}

// Dial implements Dialer
func (LogDialer) Dial(ctx context.Context) (Session, error) {
	return logSession{}, nil
}

type logSession struct{}

func (logSession) Send(ctx context.Context, msg *Message) error {
	attachments := make([]string, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		attachments = append(attachments, a.Filename)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":          msg.To,
		"subject":     msg.Subject,
		"attachments": attachments,
	}).Info("Email not delivered: no SMTP host configured")
	return nil
}

func (logSession) Close() error { return nil }
