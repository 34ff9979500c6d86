package payload

// Wallet is the projection of a wallet data payload (Moralis shape). Counts
// drive the crypto and NFT scorers; lists are kept as identifiers only.
type Wallet struct {
	Address string

	// NativeBalance is denominated in the chain's base unit (ether, not wei).
	NativeBalance float64

	TokenBalances []string
	ActiveChains  []string
	DefiPositions []string
	NFTs          []string

	// ResolvedDomain is the reverse-resolved web3 domain, "" when none.
	ResolvedDomain string

	// TransactionCount and UniqueTokenInteractions currently have no wired
	// upstream source and stay zero; they are still projected so the weight
	// and badge tables can reference them.
	TransactionCount        float64
	UniqueTokenInteractions float64
}

// ProjectWallet extracts a Wallet from a raw payload map.
func ProjectWallet(raw map[string]any) Wallet {
	w := Wallet{
		Address:                 digString(raw, "address"),
		NativeBalance:           digFloat(raw, "nativeBalance"),
		ResolvedDomain:          digString(raw, "resolvedAddress"),
		TransactionCount:        digFloat(raw, "transactionCount"),
		UniqueTokenInteractions: digFloat(raw, "uniqueTokenInteractions"),
	}

	for _, item := range digList(raw, "tokenBalances") {
		w.TokenBalances = append(w.TokenBalances, itemName(item, "symbol"))
	}
	for _, item := range digList(raw, "activeChains") {
		w.ActiveChains = append(w.ActiveChains, itemName(item, "chain"))
	}
	for _, item := range digList(raw, "defiPositionsSummary") {
		w.DefiPositions = append(w.DefiPositions, itemName(item, "protocol_name"))
	}
	for _, item := range digList(raw, "walletNFTs") {
		w.NFTs = append(w.NFTs, itemName(item, "token_address"))
	}

	return w
}

// itemName reads a label field from a list element which may be a plain
// string or an object; unnamed entries still count, so it never drops them.
func itemName(item any, key string) string {
	switch v := item.(type) {
	case string:
		return v
	case map[string]any:
		return digString(v, key)
	default:
		return ""
	}
}
