package resend

import (
	"context"
	"errors"
	"net/http"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/mailgate/pkg/mailer"
)

var errNoMessageID = errors.New("response carries no message id")

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
}

// New creates a new Resend sender bound to cfg.APIKey.
func New(cfg Config) *Sender {
	client := resend.NewClient(cfg.APIKey)
	if cfg.HTTPClient != nil {
		client = resend.NewCustomClient(cfg.HTTPClient, cfg.APIKey)
	}
	return &Sender{client: client}
}

// Factory returns a mailer.SenderFactory that builds a Resend sender per token.
// All senders share httpClient; nil means the SDK default.
func Factory(httpClient *http.Client) mailer.SenderFactory {
	return func(token string) mailer.Sender {
		return New(Config{APIKey: token, HTTPClient: httpClient})
	}
}

// Send implements mailer.Sender.
// Empty optional fields are dropped from the request body by the SDK.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	if err := email.Validate(); err != nil {
		return "", err
	}

	req := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	}

	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", &mailer.ProviderError{Provider: "resend", Err: err}
	}
	if resp == nil || resp.Id == "" {
		return "", &mailer.ProviderError{Provider: "resend", Err: errNoMessageID}
	}

	return resp.Id, nil
}

var _ mailer.Sender = (*Sender)(nil)
