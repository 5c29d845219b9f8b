package gateway_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/mailgate/pkg/mailer"
	"github.com/dmitrymomot/mailgate/pkg/mailstore"
	"github.com/dmitrymomot/mailgate/pkg/settings"
)

type settingsMock struct{ mock.Mock }

func (m *settingsMock) Load(ctx context.Context) (settings.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.Settings), args.Error(1)
}

type senderMock struct{ mock.Mock }

func (m *senderMock) Send(ctx context.Context, email *mailer.Email) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

type storeMock struct{ mock.Mock }

func (m *storeMock) Find(ctx context.Context, q mailstore.Query) ([]mailstore.Email, error) {
	args := m.Called(ctx, q)
	emails, _ := args.Get(0).([]mailstore.Email)
	return emails, args.Error(1)
}

// senderFactory records the token each sender was built with.
type senderFactory struct {
	sender *senderMock
	tokens []string
}

func (f *senderFactory) build(token string) mailer.Sender {
	f.tokens = append(f.tokens, token)
	return f.sender
}
