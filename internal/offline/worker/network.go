package worker

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"oneday-todo/internal/offline/cache"
)

// Fetcher performs the network side of a strategy. An error means the
// network was unreachable; HTTP error statuses are returned as responses.
type Fetcher interface {
	Fetch(ctx context.Context, r *http.Request) (*cache.Response, error)
}

type httpFetcher struct {
	client *http.Client
	origin *url.URL
}

// NewHTTPFetcher returns a Fetcher that sends every request to originURL.
// Absolute request URLs naming another host fail with ErrForeignOrigin and
// are never dialed.
func NewHTTPFetcher(originURL string, timeout time.Duration) (Fetcher, error) {
	origin, err := url.Parse(originURL)
	if err != nil {
		return nil, fmt.Errorf("parse origin url: %w", err)
	}
	if origin.Scheme == "" || origin.Host == "" {
		return nil, fmt.Errorf("origin url %q must be absolute", originURL)
	}
	return &httpFetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		origin: origin,
	}, nil
}

func (f *httpFetcher) Fetch(ctx context.Context, r *http.Request) (*cache.Response, error) {
	if r.URL.Host != "" && !strings.EqualFold(r.URL.Host, f.origin.Host) {
		return nil, fmt.Errorf("%w: %s", ErrForeignOrigin, r.URL.Host)
	}

	out := r.Clone(ctx)
	out.RequestURI = ""
	out.URL.Scheme = f.origin.Scheme
	out.URL.Host = f.origin.Host
	out.Host = f.origin.Host
	for k := range out.Header {
		if cache.IsHopHeader(k) {
			out.Header.Del(k)
		}
	}
	// Stored bodies stay uncompressed; the transport handles gzip itself.
	out.Header.Del("Accept-Encoding")

	resp, err := f.client.Do(out)
	if err != nil {
		return nil, err
	}
	return cache.ReadResponse(resp)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, r *http.Request) (*cache.Response, error)

func (fn FetcherFunc) Fetch(ctx context.Context, r *http.Request) (*cache.Response, error) {
	return fn(ctx, r)
}
