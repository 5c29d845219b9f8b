package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmail_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *Email {
		return &Email{
			From:    "System <noreply@example.com>",
			To:      []string{"user@example.com"},
			Subject: "Hello",
			Text:    "Body",
		}
	}

	t.Run("valid text email", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, valid().Validate())
	})

	t.Run("html only is enough", func(t *testing.T) {
		t.Parallel()
		e := valid()
		e.Text = ""
		e.HTML = "<p>Body</p>"
		require.NoError(t, e.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*Email)
		want   error
	}{
		{name: "no sender", mutate: func(e *Email) { e.From = "" }, want: ErrNoSender},
		{name: "no recipient", mutate: func(e *Email) { e.To = nil }, want: ErrNoRecipient},
		{name: "no subject", mutate: func(e *Email) { e.Subject = "" }, want: ErrNoSubject},
		{name: "no content", mutate: func(e *Email) { e.Text = "" }, want: ErrNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := valid()
			tt.mutate(e)
			require.ErrorIs(t, e.Validate(), tt.want)
		})
	}
}
