// Package mailer defines the provider-neutral email payload and the Sender
// interface implemented by delivery providers.
//
// A Sender delivers one fully prepared Email and returns the provider-assigned
// message ID. Provider adapters live in sub-packages (see mailer/resend).
//
// # Usage
//
//	sender := resend.New(resend.Config{APIKey: token})
//
//	id, err := sender.Send(ctx, &mailer.Email{
//		From:    address.Format("System", "noreply@example.com"),
//		To:      []string{"user@example.com"},
//		Subject: "Hello",
//		Text:    "Plain body",
//	})
//	if err != nil {
//		// errors.Is(err, mailer.ErrSendFailed)
//	}
//
// Senders are cheap to construct. When the API token depends on the sending
// domain, construct one per request through a SenderFactory.
package mailer
