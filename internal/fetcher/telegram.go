package fetcher

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	groupSchemaURL   = "https://common.schemas.verida.io/social/chat/group/v0.1.0/schema.json"
	messageSchemaURL = "https://common.schemas.verida.io/social/chat/message/v0.1.0/schema.json"

	telegramSourceApplication = "https://telegram.com"

	// Verida caps result sets; fetch in one page up to this limit.
	veridaQueryLimit = 10000
)

// TelegramData carries the raw datastore items for a user's Telegram
// groups and messages.
type TelegramData struct {
	GroupItems   []any
	MessageItems []any
}

// TelegramSource queries a user's Verida vault for Telegram activity.
type TelegramSource interface {
	TelegramData(ctx context.Context, did, authToken string) (TelegramData, error)
}

// TelegramFetcher talks to the Verida REST gateway. Datastores are addressed
// by the base64 encoding of their schema URL.
type TelegramFetcher struct {
	baseURL string
	client  *http.Client
	log     *zap.SugaredLogger
}

func NewTelegramFetcher(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *TelegramFetcher {
	return &TelegramFetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// TelegramData fetches groups and messages for the DID. A failed sub-query
// degrades to an empty list so one bad datastore does not void the other.
func (f *TelegramFetcher) TelegramData(ctx context.Context, did, authToken string) (TelegramData, error) {
	if did == "" || authToken == "" {
		return TelegramData{}, fmt.Errorf("verida did and auth token are required")
	}

	data := TelegramData{GroupItems: []any{}, MessageItems: []any{}}

	groups, err := f.queryDatastore(ctx, authToken, groupSchemaURL)
	if err != nil {
		f.log.Warnw("verida group query failed", "did", did, "error", err)
	} else {
		data.GroupItems = groups
	}

	messages, err := f.queryDatastore(ctx, authToken, messageSchemaURL)
	if err != nil {
		f.log.Warnw("verida message query failed", "did", did, "error", err)
	} else {
		data.MessageItems = messages
	}

	return data, nil
}

func (f *TelegramFetcher) queryDatastore(ctx context.Context, authToken, schemaURL string) ([]any, error) {
	encoded := base64.StdEncoding.EncodeToString([]byte(schemaURL))
	endpoint := fmt.Sprintf("%s/ds/query/%s", f.baseURL, encoded)

	body, err := json.Marshal(map[string]any{
		"query": map[string]any{
			"sourceApplication": telegramSourceApplication,
		},
		"options": map[string]any{
			"sort":  []map[string]string{{"_id": "desc"}},
			"limit": veridaQueryLimit,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authToken)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verida returned status %d", resp.StatusCode)
	}

	var result struct {
		Items []any `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode verida response: %w", err)
	}
	if result.Items == nil {
		return []any{}, nil
	}
	return result.Items, nil
}
