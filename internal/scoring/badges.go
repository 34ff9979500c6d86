package scoring

// Level is a badge tier.
type Level string

const (
	LevelSilver   Level = "Silver"
	LevelGold     Level = "Gold"
	LevelPlatinum Level = "Platinum"
)

// BadgeAward carries the assigned tier and the raw metric value that earned
// it, for display and audit.
type BadgeAward struct {
	Level Level   `json:"level"`
	Value float64 `json:"value"`
}

// BadgeSet maps badge name to its award. Badges below the silver threshold
// are absent entirely.
type BadgeSet map[string]BadgeAward

// Names returns the awarded badge names.
func (b BadgeSet) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	return names
}

// BadgeRule defines one badge: its driving metric and the minimum values for
// each tier. Rules whose metric has no wired source keep their thresholds but
// are never awarded until a source exists.
type BadgeRule struct {
	Name     string
	Metric   Metric
	Silver   float64
	Gold     float64
	Platinum float64
}

// BadgeRules is the full threshold table. Pure configuration.
var BadgeRules = []BadgeRule{
	// Twitter-based badges.
	{Name: "Influence Investor", Metric: MetricFollowers, Silver: 1_000_000, Gold: 5_000_000, Platinum: 10_000_000},
	{Name: "Tweet Trader", Metric: MetricTweetHundreds, Silver: 5, Gold: 10, Platinum: 20},
	{Name: "Engagement Economist", Metric: MetricFavourites, Silver: 1_000, Gold: 5_000, Platinum: 10_000},
	{Name: "Media Mogul", Metric: MetricMediaCount, Silver: 100, Gold: 500, Platinum: 1_000},
	{Name: "List Legend", Metric: MetricListedCount, Silver: 100, Gold: 500, Platinum: 1_000},
	{Name: "Verified Visionary", Metric: MetricBlueVerified, Silver: 1, Gold: 1, Platinum: 1},
	{Name: "Pinned Post Pro", Metric: MetricPinnedTweet, Silver: 1, Gold: 1, Platinum: 1},
	{Name: "Super Follower", Metric: MetricSuperFollow, Silver: 1, Gold: 1, Platinum: 1},
	{Name: "Creator Subscriber", Metric: MetricCreatorSubscriptions, Silver: 5, Gold: 10, Platinum: 20},
	{Name: "Twitter Veteran", Metric: MetricAccountAgeYears, Silver: 5, Gold: 10, Platinum: 15},
	{Name: "Retweet King", Metric: MetricRetweets, Silver: 100, Gold: 500, Platinum: 1_000},
	{Name: "Quote Master", Metric: MetricQuotes, Silver: 50, Gold: 200, Platinum: 500},
	{Name: "Reply Champion", Metric: MetricReplies, Silver: 100, Gold: 500, Platinum: 1_000},

	// Wallet-based badges.
	{Name: "Chain Explorer", Metric: MetricActiveChains, Silver: 2, Gold: 5, Platinum: 10},
	{Name: "Token Holder", Metric: MetricTokenHoldings, Silver: 5, Gold: 20, Platinum: 50},
	{Name: "NFT Collector", Metric: MetricNFTHoldings, Silver: 1, Gold: 5, Platinum: 10},
	{Name: "DeFi Participant", Metric: MetricDefiPositions, Silver: 1, Gold: 3, Platinum: 5},
	{Name: "Gas Spender", Metric: MetricGasSpent, Silver: 100, Gold: 500, Platinum: 1_000},
	{Name: "Staking Enthusiast", Metric: MetricStakingPositions, Silver: 1, Gold: 3, Platinum: 5},
	{Name: "Airdrop Recipient", Metric: MetricAirdrops, Silver: 1, Gold: 5, Platinum: 10},
	{Name: "DAO Voter", Metric: MetricDAOVotes, Silver: 1, Gold: 5, Platinum: 10},
	{Name: "Web3 Domain Owner", Metric: MetricWeb3Domain, Silver: 1, Gold: 1, Platinum: 1},
	{Name: "High-Value Trader", Metric: MetricTransactionVolume, Silver: 10_000, Gold: 50_000, Platinum: 100_000},
	{Name: "Transaction Titan", Metric: MetricTransactionCount, Silver: 100, Gold: 500, Platinum: 1_000},
	{Name: "Token Interactor", Metric: MetricTokenInteractions, Silver: 10, Gold: 50, Platinum: 100},

	// Telegram-based badges.
	{Name: "Group Guru", Metric: MetricGroupCount, Silver: 5, Gold: 10, Platinum: 20},
	{Name: "Message Maestro", Metric: MetricMessageCount, Silver: 100, Gold: 500, Platinum: 1_000},
	{Name: "Pinned Message Master", Metric: MetricPinnedMessages, Silver: 1, Gold: 5, Platinum: 10},
	{Name: "Media Messenger", Metric: MetricMediaMessages, Silver: 10, Gold: 50, Platinum: 100},
	{Name: "Hashtag Hero", Metric: MetricHashtags, Silver: 10, Gold: 50, Platinum: 100},
	{Name: "Poll Creator", Metric: MetricCanSendPolls, Silver: 1, Gold: 5, Platinum: 10},
	{Name: "Leadership Legend", Metric: MetricLeadership, Silver: 1, Gold: 3, Platinum: 5},
	{Name: "Bot Interactor", Metric: MetricBotInteractions, Silver: 10, Gold: 50, Platinum: 100},
	{Name: "Verified Group Member", Metric: MetricVerifiedGroups, Silver: 1, Gold: 3, Platinum: 5},
	{Name: "Quick Responder", Metric: MetricQuickResponses, Silver: 10, Gold: 50, Platinum: 100},
	{Name: "Sticker Star", Metric: MetricStickerMessages, Silver: 10, Gold: 50, Platinum: 100},
	{Name: "GIF Guru", Metric: MetricGifMessages, Silver: 10, Gold: 50, Platinum: 100},
	{Name: "Mention Magnet", Metric: MetricMentions, Silver: 10, Gold: 50, Platinum: 100},
}

// AssignBadges evaluates every badge rule against the metric snapshot.
// The highest tier met wins; platinum is checked first so tier assignment is
// monotonic by construction.
func AssignBadges(metrics MetricSet) BadgeSet {
	badges := BadgeSet{}
	for _, rule := range BadgeRules {
		value := metrics.Get(rule.Metric)
		if award, ok := assignLevel(rule, value); ok {
			badges[rule.Name] = award
		}
	}
	return badges
}

func assignLevel(rule BadgeRule, value float64) (BadgeAward, bool) {
	switch {
	case value >= rule.Platinum:
		return BadgeAward{Level: LevelPlatinum, Value: value}, true
	case value >= rule.Gold:
		return BadgeAward{Level: LevelGold, Value: value}, true
	case value >= rule.Silver:
		return BadgeAward{Level: LevelSilver, Value: value}, true
	default:
		return BadgeAward{}, false
	}
}
