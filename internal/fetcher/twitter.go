package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// TwitterSource fetches a user's raw profile payload.
type TwitterSource interface {
	UserDetails(ctx context.Context, username string) (map[string]any, error)
}

const (
	twitterMaxRetries = 3
	twitterRetryDelay = 5 * time.Second
)

// TwitterFetcher loads user profiles from the twitter241 RapidAPI endpoint.
type TwitterFetcher struct {
	apiKey  string
	apiHost string
	client  *http.Client
	log     *zap.SugaredLogger
}

func NewTwitterFetcher(apiKey, apiHost string, timeout time.Duration, log *zap.SugaredLogger) *TwitterFetcher {
	return &TwitterFetcher{
		apiKey:  apiKey,
		apiHost: apiHost,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// UserDetails fetches the raw user-result payload for a username. Rate-limit
// responses are retried up to twitterMaxRetries times with a fixed delay.
func (f *TwitterFetcher) UserDetails(ctx context.Context, username string) (map[string]any, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	base := f.apiHost
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	endpoint := fmt.Sprintf("%s/user?username=%s", base, url.QueryEscape(username))

	for attempt := 1; attempt <= twitterMaxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("x-rapidapi-key", f.apiKey)
		req.Header.Set("x-rapidapi-host", f.apiHost)

		resp, err := f.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("twitter request failed: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			f.log.Warnw("twitter rate limit hit, retrying",
				"username", username, "attempt", attempt)
			if attempt == twitterMaxRetries {
				return nil, fmt.Errorf("twitter rate limit exceeded for %s", username)
			}
			select {
			case <-time.After(twitterRetryDelay):
				continue
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("twitter api returned status %d", resp.StatusCode)
		}

		var body struct {
			Result map[string]any `json:"result"`
		}
		err = json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode twitter response: %w", err)
		}

		if body.Result == nil {
			return nil, fmt.Errorf("twitter user not found: %s", username)
		}

		return body.Result, nil
	}

	return nil, fmt.Errorf("twitter user fetch failed: %s", username)
}
