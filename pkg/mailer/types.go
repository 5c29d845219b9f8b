package mailer

// Email represents a fully prepared email message ready for sending.
// Empty optional fields are omitted from the provider request.
type Email struct {
	Headers map[string]string // Custom headers
	Subject string            // Email subject
	HTML    string            // HTML body content
	Text    string            // Plain text body content
	From    string            // Sender mailbox, "Name <email>"
	ReplyTo string            // Reply-to address
	To      []string          // Recipients (at least one required)
	CC      []string          // Carbon copy recipients
	BCC     []string          // Blind carbon copy recipients
}

// Validate checks the fields every provider requires.
func (e *Email) Validate() error {
	switch {
	case e.From == "":
		return ErrNoSender
	case len(e.To) == 0:
		return ErrNoRecipient
	case e.Subject == "":
		return ErrNoSubject
	case e.Text == "" && e.HTML == "":
		return ErrNoContent
	}
	return nil
}
