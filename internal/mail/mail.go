// Package mail renders and delivers allocation notifications.
package mail

import (
	"context"
)

//go:generate mockgen -source=mail.go -destination=../mocks/mail_mocks.go -package=mocks

// Attachment is a file carried by a Message
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is a single outbound email
type Message struct {
	To          string
	Subject     string
	TextBody    string
	HTMLBody    string
	Attachments []Attachment
}

// Session is an open connection to the mail transport. A session is used by
// one goroutine at a time.
type Session interface {
	Send(ctx context.Context, msg *Message) error
	Close() error
}

// Dialer opens transport sessions
type Dialer interface {
	Dial(ctx context.Context) (Session, error)
}
