package resend

import "net/http"

// Config holds Resend client configuration.
// The API key normally comes from the per-domain token map, not from the environment.
type Config struct {
	// HTTPClient overrides the client used for API calls (timeouts, proxies, tests).
	HTTPClient *http.Client
	APIKey     string
}
