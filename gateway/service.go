package gateway

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/mailgate/pkg/address"
	"github.com/dmitrymomot/mailgate/pkg/mailer"
	"github.com/dmitrymomot/mailgate/pkg/mailstore"
	"github.com/dmitrymomot/mailgate/pkg/settings"
)

// Service sends and queries email on behalf of the system sender.
type Service struct {
	cfg      Config
	settings settings.Store
	senders  mailer.SenderFactory
	store    mailstore.Store
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService wires the collaborators. All of them are required.
func NewService(cfg Config, st settings.Store, senders mailer.SenderFactory, store mailstore.Store, opts ...Option) *Service {
	s := &Service{
		cfg:      cfg,
		settings: st,
		senders:  senders,
		store:    store,
		now:      time.Now,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendEmail validates req, resolves the provider token for the sender
// domain and makes exactly one provider call. Validation failures never
// reach settings or the provider.
func (s *Service) SendEmail(ctx context.Context, req SendRequest) (*SendResult, error) {
	if len(req.To) == 0 {
		return nil, invalidInput("recipients required")
	}
	if req.Subject == "" {
		return nil, invalidInput("subject is required")
	}
	if req.Text == "" && req.HTML == "" {
		return nil, invalidInput("text or html content is required")
	}
	for _, to := range req.To {
		if !address.IsValid(to) {
			return nil, invalidInput("invalid email address: %s", to)
		}
	}

	if s.cfg.SenderEmail == "" {
		return nil, misconfigured("sender not configured", nil)
	}
	domain, err := address.Domain(s.cfg.SenderEmail)
	if err != nil {
		return nil, misconfigured("sender not configured", err)
	}

	conf, err := s.settings.Load(ctx)
	if err != nil {
		return nil, misconfigured("settings unavailable", err)
	}
	token, ok := conf.Token(domain)
	if !ok {
		return nil, misconfigured("no provider token for domain "+domain, nil)
	}

	msg := &mailer.Email{
		From:    address.Format(s.cfg.senderName(req.FromName), s.cfg.SenderEmail),
		To:      slices.Clone(req.To),
		Subject: req.Subject,
		Text:    req.Text,
		HTML:    req.HTML,
	}

	id, err := s.senders(token).Send(ctx, msg)
	if err != nil {
		s.logger.ErrorContext(ctx, "provider rejected email",
			slog.String("domain", domain),
			slog.Int("recipients", len(req.To)),
			slog.String("error", err.Error()),
		)
		return nil, &Error{Kind: ErrProvider, Message: "failed to send email: " + providerMessage(err), Err: err}
	}

	s.logger.InfoContext(ctx, "email sent",
		slog.String("message_id", id),
		slog.String("domain", domain),
		slog.Int("recipients", len(req.To)),
	)

	return &SendResult{
		MessageID: id,
		SentTo:    req.To,
		Subject:   req.Subject,
		SentAt:    Timestamp(s.now()),
	}, nil
}

func providerMessage(err error) string {
	var pe *mailer.ProviderError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}

// QueryEmail returns received, non-deleted email matching req, newest first.
func (s *Service) QueryEmail(ctx context.Context, req QueryRequest) (QueryResult, error) {
	q, err := BuildQuery(req, s.now())
	if err != nil {
		return nil, err
	}

	emails, err := s.store.Find(ctx, q)
	if err != nil {
		s.logger.ErrorContext(ctx, "email query failed", slog.String("error", err.Error()))
		return nil, &Error{Kind: ErrStore, Message: "failed to query email", Err: err}
	}
	if emails == nil {
		emails = []mailstore.Email{}
	}
	return emails, nil
}
