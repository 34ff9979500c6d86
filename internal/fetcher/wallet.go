package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// WalletSource fetches a wallet's raw on-chain payload.
type WalletSource interface {
	WalletDetails(ctx context.Context, address string) (map[string]any, error)
}

// WalletFetcher aggregates the Moralis EVM API calls that feed the wallet
// scorer. Ethereum mainnet only.
type WalletFetcher struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     *zap.SugaredLogger
}

func NewWalletFetcher(apiKey, baseURL string, timeout time.Duration, log *zap.SugaredLogger) *WalletFetcher {
	return &WalletFetcher{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// WalletDetails issues the Moralis calls concurrently and assembles the raw
// wallet payload map the projection consumes. Any failed call fails the
// whole fetch; the caller degrades the category.
func (f *WalletFetcher) WalletDetails(ctx context.Context, address string) (map[string]any, error) {
	if address == "" {
		return nil, fmt.Errorf("wallet address is required")
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error

		balance  map[string]any
		tokens   []any
		chains   map[string]any
		defi     map[string]any
		resolved map[string]any
		nfts     map[string]any
	)

	fetch := func(path string, into *map[string]any) {
		defer wg.Done()
		result, err := f.getJSON(ctx, path)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		*into = result
	}
	fetchList := func(path string, into *[]any) {
		defer wg.Done()
		result, err := f.getJSONList(ctx, path)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		*into = result
	}

	wg.Add(6)
	go fetch(fmt.Sprintf("/%s/balance?chain=eth", address), &balance)
	go fetchList(fmt.Sprintf("/%s/erc20?chain=eth", address), &tokens)
	go fetch(fmt.Sprintf("/wallets/%s/chains", address), &chains)
	go fetch(fmt.Sprintf("/wallets/%s/defi/summary?chain=eth", address), &defi)
	go fetch(fmt.Sprintf("/resolve/%s/reverse", address), &resolved)
	go fetch(fmt.Sprintf("/%s/nft?chain=eth&format=decimal&media_items=false", address), &nfts)
	wg.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("failed to fetch wallet data: %w", firstErr)
	}

	payload := map[string]any{
		"address":              address,
		"nativeBalance":        weiToEther(stringField(balance, "balance")),
		"tokenBalances":        tokens,
		"activeChains":         listField(chains, "active_chains"),
		"defiPositionsSummary": listField(defi, "protocols"),
		"resolvedAddress":      stringField(resolved, "name"),
		"walletNFTs":           listField(nfts, "result"),
	}

	return payload, nil
}

func (f *WalletFetcher) getJSON(ctx context.Context, path string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", f.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Moralis returns 404 for unresolvable domains; treat as empty.
	if resp.StatusCode == http.StatusNotFound {
		return map[string]any{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("moralis returned status %d for %s", resp.StatusCode, path)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode moralis response: %w", err)
	}
	return result, nil
}

func (f *WalletFetcher) getJSONList(ctx context.Context, path string) ([]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", f.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("moralis returned status %d for %s", resp.StatusCode, path)
	}

	var result []any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode moralis response: %w", err)
	}
	return result, nil
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func listField(m map[string]any, key string) []any {
	if m == nil {
		return []any{}
	}
	if v, ok := m[key].([]any); ok {
		return v
	}
	return []any{}
}

// weiToEther converts a wei-denominated decimal string to ether.
func weiToEther(wei string) float64 {
	if wei == "" {
		return 0
	}
	value, ok := new(big.Float).SetString(wei)
	if !ok {
		return 0
	}
	ether, _ := new(big.Float).Quo(value, big.NewFloat(1e18)).Float64()
	return ether
}
