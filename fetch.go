package remodel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// Fetcher retrieves JSON arrays of source records over HTTP
//
// the zero Fetcher is usable - it uses http.DefaultClient and no rate limiting
type Fetcher struct {
	// Client is the http client to use (if nil, http.DefaultClient is used)
	Client *http.Client
	// Limiter optionally throttles outgoing requests
	Limiter *rate.Limiter
}

// FetchRecords GETs the url and parses the response body as a JSON array of
// records
func (f *Fetcher) FetchRecords(ctx context.Context, url string) ([]Record, error) {
	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch records: unexpected status %d", res.StatusCode)
	}
	var records []Record
	if err = json.NewDecoder(res.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	return records, nil
}

// FetchRecords GETs the url using a zero Fetcher
func FetchRecords(ctx context.Context, url string) ([]Record, error) {
	return (&Fetcher{}).FetchRecords(ctx, url)
}
