// Package scraper implements opportunity fetching, categorization and
// ingestion from Kenyan job boards.
package scraper

import (
	"context"
	"net/http"
	"time"
)

const (
	httpTimeout = 15 * time.Second
	maxPages    = 3
)

// RawListing is one listing as extracted from a job board page, before
// categorization.
type RawListing struct {
	Title          string
	Company        string
	Location       string
	Description    string
	SourceURL      string
	SourcePlatform string
}

// Fetcher retrieves one page of listings from a job board. Page numbering
// starts at 1; an empty result ends pagination.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, page int) ([]RawListing, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

func get(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html")
	return client.Do(req)
}
