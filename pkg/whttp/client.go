package whttp

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

type LoggingRoundTripper struct {
	Proxied http.RoundTripper
}

func (lrt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	slog.Info("outbound request", "method", req.Method, "url", redactedURL(req.URL))

	res, err := lrt.Proxied.RoundTrip(req)
	if err != nil {
		slog.Error("outbound request failed", "method", req.Method, "url", redactedURL(req.URL), "error", err.Error())
		return res, err
	}

	slog.Info("outbound response", "status", res.Status, "url", redactedURL(req.URL))

	return res, nil
}

// redactedURL strips API keys from the query string before logging.
func redactedURL(u *url.URL) string {
	q := u.Query()
	for _, param := range []string{"key", "access_key"} {
		if q.Has(param) {
			q.Set(param, "*****")
		}
	}

	redacted := *u
	redacted.RawQuery = q.Encode()
	return redacted.String()
}

func NewLoggingClient() *http.Client {
	return &http.Client{
		Transport: LoggingRoundTripper{Proxied: http.DefaultTransport},
		Timeout:   10 * time.Second,
	}
}
