package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"path"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/pkg/logger"
)

// LoggingRoundTripper logs outgoing requests by host and last path segment only:
// webhook URLs carry their secret in the path.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
}

func NewLoggingRoundTripper(transport http.RoundTripper) *LoggingRoundTripper {
	return &LoggingRoundTripper{Transport: transport}
}

func (l *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	target := fmt.Sprintf("%s %s/%s", r.Method, r.URL.Host, path.Base(r.URL.Path))

	slog.InfoContext(ctx, "outgoing request", "request", target)

	resp, err := l.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response", "response", target, "status", resp.StatusCode)

	return resp, nil
}
