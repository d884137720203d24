package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mkadlec/stockwatch/pkg/inventory"
)

// Source produces raw inventory entries from a supplier feed.
type Source interface {
	Fetch(ctx context.Context) ([]inventory.RawEntry, error)
}

// FetchError reports a failure to retrieve or parse a supplier feed.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch feed %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// HTTPSource fetches a supplier XML feed over HTTP and parses it
// with a dialect profile.
type HTTPSource struct {
	url     string
	profile Profile
	client  *http.Client
}

// NewHTTPSource creates a feed source for the given URL. The timeout
// bounds the whole request including the body read.
func NewHTTPSource(url string, profile Profile, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:     url,
		profile: profile,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch downloads and parses the feed. Network failures, non-2xx
// responses and malformed documents all surface as a *FetchError.
func (s *HTTPSource) Fetch(ctx context.Context) ([]inventory.RawEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &FetchError{URL: s.url, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: s.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &FetchError{URL: s.url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	entries, err := Parse(resp.Body, s.profile)
	if err != nil {
		return nil, &FetchError{URL: s.url, Err: err}
	}
	return entries, nil
}
