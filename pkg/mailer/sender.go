package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message and returns the provider message ID.
	// Failures wrap ErrSendFailed and carry the provider's message.
	Send(ctx context.Context, email *Email) (string, error)
}

// SenderFactory builds a Sender bound to one provider API token.
type SenderFactory func(token string) Sender
