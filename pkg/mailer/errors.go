package mailer

import "errors"

var (
	ErrNoRecipient = errors.New("mailer: email must have at least one recipient")
	ErrNoSubject   = errors.New("mailer: email must have a subject")
	ErrNoContent   = errors.New("mailer: email must have text or HTML content")
	ErrNoSender    = errors.New("mailer: email must have a sender")
	ErrSendFailed  = errors.New("mailer: send failed")
)

// ProviderError is returned by senders when the delivery provider rejects or
// fails a message. It matches ErrSendFailed with errors.Is.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() []error {
	return []error{ErrSendFailed, e.Err}
}
