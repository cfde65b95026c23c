package pokeapi

//go:generate mockgen -destination=mock/mock_fetcher.go -package=mockpokeapi -source=fetcher.go

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single request to the provider
const DefaultTimeout = 10 * time.Second

// Fetcher retrieves a raw document by url
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ErrorKind classifies a provider failure
type ErrorKind string

const (
	ErrorKindConnectionFailed ErrorKind = "connection_failed"
	ErrorKindTimeout          ErrorKind = "timeout"
	ErrorKindBadStatus        ErrorKind = "bad_status"
)

// ProviderError is returned for any failure talking to the data provider
type ProviderError struct {
	Kind       ErrorKind
	StatusCode int
	URL        string
	Cause      error
}

func (e *ProviderError) Error() string {
	switch e.Kind {
	case ErrorKindBadStatus:
		return fmt.Sprintf("pokeapi: %s returned status %d", e.URL, e.StatusCode)
	case ErrorKindTimeout:
		return fmt.Sprintf("pokeapi: %s timed out", e.URL)
	default:
		if e.Cause != nil {
			return fmt.Sprintf("pokeapi: connection to %s failed: %v", e.URL, e.Cause)
		}
		return fmt.Sprintf("pokeapi: connection to %s failed", e.URL)
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// IsProviderError reports whether err is, or wraps, a ProviderError
func IsProviderError(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}

// FetcherConfig configures the http fetcher
type FetcherConfig struct {
	HTTPClient *http.Client
	Timeout    time.Duration
}

type httpFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher over net/http
func NewHTTPFetcher(cfg *FetcherConfig) Fetcher {
	timeout := DefaultTimeout
	var client *http.Client
	if cfg != nil {
		client = cfg.HTTPClient
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &httpFetcher{client: client}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, &ProviderError{Kind: ErrorKindConnectionFailed, URL: url, Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classify(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &ProviderError{Kind: ErrorKindBadStatus, StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(url, err)
	}

	return body, nil
}

func classify(url string, err error) *ProviderError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ProviderError{Kind: ErrorKindTimeout, URL: url, Cause: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ProviderError{Kind: ErrorKindTimeout, URL: url, Cause: err}
	}

	return &ProviderError{Kind: ErrorKindConnectionFailed, URL: url, Cause: err}
}
