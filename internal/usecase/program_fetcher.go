package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ProgramFetcher loads a program feed from an external source.
type ProgramFetcher interface {
	Fetch(ctx context.Context, url string) (ProgramFeed, error)
}

type programHTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a fetcher that loads the program feed over HTTP.
func NewHTTPFetcher(client *http.Client) ProgramFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &programHTTPFetcher{client: client}
}

func (f *programHTTPFetcher) Fetch(ctx context.Context, url string) (ProgramFeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ProgramFeed{}, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return ProgramFeed{}, fmt.Errorf("failed to fetch program feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ProgramFeed{}, fmt.Errorf("program feed returned status: %d", resp.StatusCode)
	}

	var feed ProgramFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return ProgramFeed{}, fmt.Errorf("failed to decode program feed: %w", err)
	}
	return feed, nil
}
