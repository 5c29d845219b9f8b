package middlewares

import (
	"crypto/subtle"
	"errors"

	"github.com/dmitrymomot/mailgate/internal"
)

// APIKeyOption configures APIKey.
type APIKeyOption func(*apiKeyConfig)

type apiKeyConfig struct {
	extractor internal.Extractor
}

// WithAPIKeyExtractor replaces the default key sources.
func WithAPIKeyExtractor(e internal.Extractor) APIKeyOption {
	return func(c *apiKeyConfig) { c.extractor = e }
}

// APIKey rejects requests whose key does not equal expected.
//
// The key is read from X-API-KEY, then from Authorization with an optional
// "Bearer " prefix removed. An empty expected key fails every request with
// 500 rather than letting traffic through.
func APIKey(expected string, opts ...APIKeyOption) internal.Middleware {
	cfg := apiKeyConfig{
		extractor: internal.NewExtractor(
			internal.FromHeader("X-API-KEY"),
			internal.FromAuthorization(),
		),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			supplied, _ := cfg.extractor.Extract(c)
			err := VerifyAPIKey(expected, supplied)
			switch {
			case err == nil:
				return next(c)
			case errors.Is(err, ErrAPIKeyNotConfigured):
				c.LogError("api key not configured")
				return internal.ErrInternal("api key not configured", internal.WithError(err))
			default:
				c.LogWarn("api key rejected", "present", supplied != "")
				return internal.ErrUnauthorized("invalid api key", internal.WithError(err))
			}
		}
	}
}

// VerifyAPIKey compares supplied with expected in constant time.
func VerifyAPIKey(expected, supplied string) error {
	if expected == "" {
		return ErrAPIKeyNotConfigured
	}
	if supplied == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(supplied)) != 1 {
		return ErrInvalidAPIKey
	}
	return nil
}
