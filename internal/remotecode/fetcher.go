package remotecode

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"git.home.luguber.info/inful/docwidgets/internal/foundation/errors"
	"git.home.luguber.info/inful/docwidgets/internal/logfields"
	"git.home.luguber.info/inful/docwidgets/internal/metrics"
)

// Fetcher retrieves the raw text behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// HTTPFetcher issues a single unauthenticated GET per call. It does not retry
// and does not cache.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	recorder  metrics.Recorder
}

// NewHTTPFetcher creates a fetcher. A nil client gets a 30s timeout client.
func NewHTTPFetcher(client *http.Client, userAgent string, recorder metrics.Recorder) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &HTTPFetcher{client: client, userAgent: userAgent, recorder: recorder}
}

// Fetch returns the full response body. Any status other than 200 is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", errors.ValidationError("invalid raw content URL").WithCause(err).WithContext("url", rawURL).Build()
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	host := req.URL.Host
	start := time.Now()
	resp, err := f.client.Do(req)
	f.recorder.ObserveFetchDuration(host, time.Since(start))
	if err != nil {
		f.recorder.IncFetchResult(metrics.ResultNetwork)
		return "", errors.NetworkError(err, "raw content request failed").WithContext("url", redact(rawURL)).Build()
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		f.recorder.IncFetchResult(metrics.ResultHTTPError)
		return "", errors.NewError(errors.CategoryNetwork, fmt.Sprintf("unexpected status %d", resp.StatusCode)).
			WithContext("url", redact(rawURL)).
			WithContext("status", resp.StatusCode).
			Build()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.recorder.IncFetchResult(metrics.ResultNetwork)
		return "", errors.NetworkError(err, "cannot read raw content body").WithContext("url", redact(rawURL)).Build()
	}
	f.recorder.IncFetchResult(metrics.ResultSuccess)
	slog.Debug("Fetched raw content", logfields.URL(redact(rawURL)), logfields.Count(len(body)))
	return string(body), nil
}

// redact strips userinfo and query so URLs are safe to log.
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.User = nil
	u.RawQuery = ""
	return u.String()
}
