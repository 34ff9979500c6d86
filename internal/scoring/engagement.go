package scoring

import "math"

// Legacy telegram-only engagement scoring. This path predates the
// floor-and-cap aggregator and uses banded dynamic thresholds instead of
// linear weights; it is exposed on its own endpoint and is never mixed into
// the canonical total score.

const (
	weightKeywordBonus = 0.5

	engagementWeight = 2.0
	minEngagement    = 1.0
)

// Band holds the low/medium/high activity thresholds for one banded metric.
type Band struct {
	Low    float64
	Medium float64
	High   float64
}

var (
	groupBand   = Band{Low: 10, Medium: 50, High: 100}
	messageBand = Band{Low: 100, Medium: 500, High: 1000}
)

// dynamicScore maps a raw value into weight×1/×3/×5 depending on the band it
// exceeds, zero below the low threshold.
func dynamicScore(value, weight float64, b Band) float64 {
	switch {
	case value > b.High:
		return weight * 5
	case value > b.Medium:
		return weight * 3
	case value > b.Low:
		return weight * 1
	default:
		return 0
	}
}

// EngagementScore computes the legacy telegram engagement score: banded
// group and message activity plus the keyword bonus, floored at 1.
func EngagementScore(groupCount, messageCount int, matches *KeywordMatches) float64 {
	score := dynamicScore(float64(groupCount), engagementWeight, groupBand) +
		dynamicScore(float64(messageCount), engagementWeight, messageBand)

	if matches != nil {
		score += float64(matches.TotalCount) * weightKeywordBonus
	}

	return math.Max(score, minEngagement)
}

// FOMOScale maps raw telegram activity (groups + messages×0.1 + keyword
// bonus) onto a 1–10 scale logarithmically, so wide activity ranges compress
// gracefully.
func FOMOScale(groupCount, messageCount int, matches *KeywordMatches) float64 {
	bonus := 0.0
	if matches != nil {
		bonus = float64(matches.TotalCount) * weightKeywordBonus
	}

	raw := float64(groupCount) + float64(messageCount)*0.1 + bonus
	return 1 + 9*math.Min(1, math.Log10(raw+1)/math.Log10(101))
}

// EngagementBadges returns the badge names the legacy path hands out.
func EngagementBadges(score float64, groupCount int, matches *KeywordMatches) []string {
	var badges []string
	if score > 10 {
		badges = append(badges, "Telegram Titan")
	}
	if groupCount > 10 {
		badges = append(badges, "Community Leader")
	}
	if matches != nil && matches.TotalCount > 20 {
		badges = append(badges, "Engagement Maestro")
	}
	return badges
}
