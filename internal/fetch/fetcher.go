// Package fetch retrieves raw article pages over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const defaultAccept = "text/html,application/xhtml+xml"

// HTTPFetcher performs a single blocking GET per article. The client
// carries no timeout: a slow upstream blocks the request that asked
// for it, nothing else.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher.
func New() *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{}}
}

// Fetch retrieves the body of the given URL. Any network error or
// non-2xx status is returned as an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", defaultAccept)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
