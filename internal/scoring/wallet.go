package scoring

import "github.com/fomoscore/backend/internal/payload"

// CryptoScore maps a wallet projection to the raw crypto sub-score. NFT
// holdings are deliberately excluded; they feed NFTScore instead.
func CryptoScore(w payload.Wallet) float64 {
	score := float64(len(w.ActiveChains))*weightActiveChains +
		w.NativeBalance*weightNativeBalance +
		float64(len(w.TokenBalances))*weightTokenHoldings +
		float64(len(w.DefiPositions))*weightDefiPositions +
		w.TransactionCount*weightTransactionCount +
		w.UniqueTokenInteractions*weightTokenInteractions

	if w.ResolvedDomain != "" {
		score += weightWeb3Domain
	}

	return score
}

// NFTScore maps a wallet projection to the raw NFT sub-score.
func NFTScore(w payload.Wallet) float64 {
	return float64(len(w.NFTs)) * weightNFTHoldings
}
