package settings

import (
	"context"
	"errors"
	"strings"
)

// ErrLoadFailed is returned when a settings source cannot be read.
var ErrLoadFailed = errors.New("settings: failed to load")

// Settings holds system-wide settings consumed by the gateway.
type Settings struct {
	// ResendTokens maps a sender domain to the Resend API token allowed to send from it.
	ResendTokens map[string]string `json:"resendTokens" yaml:"resend_tokens"`
}

// Token returns the provider token for domain. Domains compare case-insensitively;
// sources store keys lower-cased. A miss is reported with ok == false and there
// is no fallback token.
func (s Settings) Token(domain string) (string, bool) {
	token, ok := s.ResendTokens[strings.ToLower(domain)]
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// normalize lower-cases token map keys.
func (s Settings) normalize() Settings {
	if len(s.ResendTokens) == 0 {
		return s
	}
	tokens := make(map[string]string, len(s.ResendTokens))
	for domain, token := range s.ResendTokens {
		tokens[strings.ToLower(strings.TrimSpace(domain))] = token
	}
	return Settings{ResendTokens: tokens}
}

// Store loads the current settings.
type Store interface {
	Load(ctx context.Context) (Settings, error)
}

// Static is a Store that always returns the same settings.
type Static Settings

// Load implements Store.
func (s Static) Load(context.Context) (Settings, error) {
	return Settings(s).normalize(), nil
}
