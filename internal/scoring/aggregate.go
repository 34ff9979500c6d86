package scoring

import "math"

// SubScores holds one value per scoring category.
type SubScores struct {
	Social    float64 `json:"socialScore"`
	Crypto    float64 `json:"cryptoScore"`
	NFT       float64 `json:"nftScore"`
	Community float64 `json:"communityScore"`
	Telegram  float64 `json:"telegramScore"`
}

// Floors are the fallbacks substituted when a raw sub-score computes to
// exactly zero. A category that was never supplied and a category that
// genuinely computed to zero both read as the floor, so missing data never
// drags the total to the bottom of the scale. Exported so persistence can
// seed brand-new records with the same values.
var Floors = SubScores{
	Social:    10,
	Crypto:    15,
	NFT:       5,
	Community: 10,
	Telegram:  5,
}

// Per-category ceilings applied after the floor substitution.
var caps = SubScores{
	Social:    50,
	Crypto:    40,
	NFT:       30,
	Community: 20,
	Telegram:  15,
}

// MaxTotalScore is the sum of every category cap.
const MaxTotalScore = 50 + 40 + 30 + 20 + 15

// Aggregate applies the floor-and-cap policy to raw sub-scores and returns
// the clamped per-category values and their total.
func Aggregate(raw SubScores) (SubScores, float64) {
	clamped := SubScores{
		Social:    clamp(raw.Social, Floors.Social, caps.Social),
		Crypto:    clamp(raw.Crypto, Floors.Crypto, caps.Crypto),
		NFT:       clamp(raw.NFT, Floors.NFT, caps.NFT),
		Community: clamp(raw.Community, Floors.Community, caps.Community),
		Telegram:  clamp(raw.Telegram, Floors.Telegram, caps.Telegram),
	}

	total := clamped.Social + clamped.Crypto + clamped.NFT + clamped.Community + clamped.Telegram
	return clamped, total
}

func clamp(raw, floor, ceiling float64) float64 {
	if raw == 0 {
		raw = floor
	}
	return math.Min(raw, ceiling)
}
