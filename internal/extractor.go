package internal

import "strings"

// ExtractorSource extracts a value from the request context.
// Returns the value and true if found, or ("", false) if not present.
type ExtractorSource = func(Context) (string, bool)

// Extractor tries multiple sources in order and returns the first match.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract iterates sources in order and returns the first non-empty value.
// Returns ("", false) if all sources miss.
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(c); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FromHeader returns a source that reads from a request header.
func FromHeader(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Header(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// FromBearerToken returns a source that reads a Bearer token from the Authorization header.
// Uses case-insensitive comparison on the "Bearer " prefix.
func FromBearerToken() ExtractorSource {
	return func(c Context) (string, bool) {
		token, ok := stripBearer(c.Header("Authorization"))
		if !ok || token == "" {
			return "", false
		}
		return token, true
	}
}

// FromAuthorization returns a source that reads the Authorization header,
// stripping a "Bearer " prefix when present. Values without the prefix are
// returned unchanged.
func FromAuthorization() ExtractorSource {
	return func(c Context) (string, bool) {
		auth := c.Header("Authorization")
		if token, ok := stripBearer(auth); ok {
			auth = token
		}
		if auth == "" {
			return "", false
		}
		return auth, true
	}
}

func stripBearer(auth string) (string, bool) {
	if len(auth) < 7 || !strings.EqualFold(auth[:7], "bearer ") {
		return "", false
	}
	return auth[7:], true
}
