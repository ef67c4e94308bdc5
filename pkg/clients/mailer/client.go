package mailer

import (
	"context"
	"errors"
)

// Client defines the interface for handing fully-formed messages to a mail transport
type Client interface {
	Send(ctx context.Context, msg *Message) error
}

// Message is one outbound email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Inline  []Attachment
}

// Attachment is a file embedded in the message and referenced from the HTML
// body as cid:<ContentID>.
type Attachment struct {
	Filename    string
	ContentID   string
	ContentType string
	Data        []byte
}

var ErrNoRecipient = errors.New("message has no recipient")

func (m *Message) validate() error {
	if m == nil || m.To == "" {
		return ErrNoRecipient
	}
	return nil
}
