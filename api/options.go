package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/blingdigital/pix/registry"
)

// Option is a functional option for configuring a Session
type Option func(*Session)

// WithHTTPClient sets the HTTP client used for API calls. The client's
// cookie jar carries the PIX session cookie; clients without a jar get
// one.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Session) {
		s.client = client
	}
}

// WithBaseURL overrides the base URL derived from the configured host.
// Mostly useful for pointing a session at a test server.
func WithBaseURL(baseURL string) Option {
	return func(s *Session) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the structured logger used for request logging.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithRegistry makes the session's factory resolve class names against reg
// instead of registry.Default.
func WithRegistry(reg *registry.Registry) Option {
	return func(s *Session) {
		s.reg = reg
	}
}
