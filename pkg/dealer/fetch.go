package dealer

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const DealersEndpoint string = "https://www.mazda.co.uk/api/dealers"

// Fetcher retrieves the raw dealer listing with a single GET.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
}

func NewFetcher(client *http.Client, userAgent string) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}

	return &Fetcher{
		Client:    client,
		UserAgent: userAgent,
	}
}

// Fetch returns the response body of a GET against endpoint. Transport
// failures and non-2xx statuses are returned as errors; nothing is retried.
func (f *Fetcher) Fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build request: %w", err)
	}

	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve dealers: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: endpoint}
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response: %w", err)
	}

	return respBytes, nil
}

// StatusError reports a non-success HTTP status from the dealer API.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("could not retrieve dealers from %s: status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}
