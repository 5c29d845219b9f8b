package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailgate/gateway"
	"github.com/dmitrymomot/mailgate/internal"
	"github.com/dmitrymomot/mailgate/pkg/mailer"
	"github.com/dmitrymomot/mailgate/pkg/mailstore"
	"github.com/dmitrymomot/mailgate/pkg/settings"
)

// recordingSender counts provider calls.
type recordingSender struct {
	mu    sync.Mutex
	sent  []*mailer.Email
	token []string
}

func (r *recordingSender) factory(token string) mailer.Sender {
	r.mu.Lock()
	r.token = append(r.token, token)
	r.mu.Unlock()
	return r
}

func (r *recordingSender) Send(_ context.Context, e *mailer.Email) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, e)
	return "msg_1", nil
}

// countingStore counts store calls.
type countingStore struct {
	*mailstore.Memory
	mu    sync.Mutex
	calls int
}

func (s *countingStore) Find(ctx context.Context, q mailstore.Query) ([]mailstore.Email, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.Memory.Find(ctx, q)
}

type testServer struct {
	handler http.Handler
	sender  *recordingSender
	store   *countingStore
}

func newTestServer(t *testing.T, cfg gateway.Config) *testServer {
	t.Helper()

	created := now.Add(-10 * time.Minute)
	deleted := mailstore.Email{ToEmail: "user@example.com", FromEmail: "x@y.org", Type: mailstore.TypeReceive, IsDel: mailstore.StatusDeleted, CreateTime: created}
	sent := mailstore.Email{ToEmail: "user@example.com", FromEmail: "x@y.org", Type: mailstore.TypeSend, CreateTime: created}
	kept := mailstore.Email{ToEmail: "user@example.com", FromEmail: "x@y.org", FromName: "X", Subject: "Welcome", Text: "hi", Content: "<p>hi</p>", Type: mailstore.TypeReceive, CreateTime: created}

	ts := &testServer{
		sender: &recordingSender{},
		store:  &countingStore{Memory: mailstore.NewMemory(deleted, sent, kept)},
	}
	svc := gateway.NewService(cfg,
		settings.Static{ResendTokens: map[string]string{"example.com": "re_example"}},
		ts.sender.factory,
		ts.store,
		gateway.WithClock(func() time.Time { return now }),
	)

	app := internal.New(
		internal.WithHandlers(gateway.NewHandler(svc, cfg.APIKey)),
		internal.WithErrorHandler(gateway.ErrorHandler),
		internal.WithNotFoundHandler(gateway.NotFound),
		internal.WithMethodNotAllowedHandler(gateway.MethodNotAllowed),
	)
	ts.handler = app.Router()
	return ts
}

type response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (ts *testServer) do(t *testing.T, method, path, body string, headers map[string]string) (int, response) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)

	var resp response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	require.Equal(t, w.Code, resp.Code)
	return w.Code, resp
}

var withKey = map[string]string{"X-API-KEY": "k"}

func TestHandler_SendEmail(t *testing.T) {
	t.Parallel()

	t.Run("success envelope", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, validConfig())
		code, resp := ts.do(t, http.MethodPost, "/external/send-email",
			`{"to":["a@b.co"],"subject":"Hi","text":"Body"}`,
			map[string]string{"Authorization": "Bearer k"})

		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "success", resp.Message)
		require.JSONEq(t, `{"messageId":"msg_1","sentTo":["a@b.co"],"subject":"Hi","sentAt":"2025-06-01T12:00:00.000Z"}`, string(resp.Data))
		require.Len(t, ts.sender.sent, 1)
		require.Equal(t, []string{"re_example"}, ts.sender.token)
	})

	t.Run("unauthorized requests never reach the provider", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, validConfig())
		for _, h := range []map[string]string{nil, {"X-API-KEY": "wrong"}, {"Authorization": "Bearer wrong"}} {
			code, resp := ts.do(t, http.MethodPost, "/external/send-email", `{"to":["a@b.co"],"subject":"Hi","text":"Body"}`, h)
			require.Equal(t, http.StatusUnauthorized, code)
			require.Equal(t, "invalid api key", resp.Message)
		}
		require.Empty(t, ts.sender.token)
		require.Empty(t, ts.sender.sent)
	})

	t.Run("missing server key is a server fault", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.APIKey = ""
		ts := newTestServer(t, cfg)
		code, _ := ts.do(t, http.MethodPost, "/external/send-email", `{}`, withKey)
		require.Equal(t, http.StatusInternalServerError, code)
		require.Empty(t, ts.sender.sent)
	})

	t.Run("invalid recipient named in message", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, validConfig())
		code, resp := ts.do(t, http.MethodPost, "/external/send-email",
			`{"to":["ok@b.co","not-an-address"],"subject":"Hi","text":"Body"}`, withKey)
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "invalid email address: not-an-address", resp.Message)
		require.Empty(t, ts.sender.sent)
	})

	t.Run("unknown sender domain", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.SenderEmail = "noreply@unknown.org"
		ts := newTestServer(t, cfg)
		code, resp := ts.do(t, http.MethodPost, "/external/send-email",
			`{"to":["a@b.co"],"subject":"Hi","text":"Body"}`, withKey)
		require.Equal(t, http.StatusInternalServerError, code)
		require.Equal(t, "no provider token for domain unknown.org", resp.Message)
		require.Empty(t, ts.sender.sent)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, validConfig())
		code, resp := ts.do(t, http.MethodPost, "/external/send-email", `{"to":`, withKey)
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "invalid JSON body", resp.Message)
	})
}

func TestHandler_QueryEmail(t *testing.T) {
	t.Parallel()

	t.Run("returns only received, non-deleted mail", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, validConfig())
		code, resp := ts.do(t, http.MethodPost, "/external/query-email",
			`{"toEmail":"user@example.com","minutesAgo":"30","startTime":"2000-01-01 00:00:00","size":1000}`, withKey)
		require.Equal(t, http.StatusOK, code)

		var emails []map[string]any
		require.NoError(t, json.Unmarshal(resp.Data, &emails))
		require.Len(t, emails, 1)
		require.Equal(t, "Welcome", emails[0]["subject"])
		require.Equal(t, "X", emails[0]["fromName"])
		require.NotContains(t, emails[0], "type")
		require.NotContains(t, emails[0], "isDel")
	})

	t.Run("minutesAgo excludes older mail", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, validConfig())
		code, resp := ts.do(t, http.MethodPost, "/external/query-email",
			`{"toEmail":"user@example.com","minutesAgo":5}`, withKey)
		require.Equal(t, http.StatusOK, code)
		require.JSONEq(t, `[]`, string(resp.Data))
	})

	t.Run("unauthorized never reaches the store", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, validConfig())
		code, _ := ts.do(t, http.MethodPost, "/external/query-email", `{"toEmail":"user@example.com"}`, nil)
		require.Equal(t, http.StatusUnauthorized, code)
		require.Zero(t, ts.store.calls)
	})

	t.Run("missing toEmail", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, validConfig())
		code, resp := ts.do(t, http.MethodPost, "/external/query-email", `{"fromEmail":"a@b.co"}`, withKey)
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "toEmail is required", resp.Message)
		require.Zero(t, ts.store.calls)
	})
}

func TestHandler_UnknownRoutes(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, validConfig())

	code, resp := ts.do(t, http.MethodGet, "/nope", "", nil)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "route not found", resp.Message)

	code, _ = ts.do(t, http.MethodGet, "/external/send-email", "", withKey)
	require.Equal(t, http.StatusMethodNotAllowed, code)
}
