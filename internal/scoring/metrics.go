package scoring

import (
	"time"

	"github.com/fomoscore/backend/internal/payload"
)

// Metric names a badge rule's driving value. Metrics without a wired data
// source simply never appear in a MetricSet and read as zero.
type Metric string

const (
	// Twitter metrics.
	MetricFollowers            Metric = "followers"
	MetricTweetHundreds        Metric = "tweet_hundreds"
	MetricFavourites           Metric = "favourites"
	MetricMediaCount           Metric = "media_count"
	MetricListedCount          Metric = "listed_count"
	MetricBlueVerified         Metric = "blue_verified"
	MetricPinnedTweet          Metric = "pinned_tweet"
	MetricSuperFollow          Metric = "super_follow"
	MetricCreatorSubscriptions Metric = "creator_subscriptions"
	MetricAccountAgeYears      Metric = "account_age_years"
	MetricRetweets             Metric = "retweets"
	MetricQuotes               Metric = "quotes"
	MetricReplies              Metric = "replies"

	// Wallet metrics.
	MetricActiveChains      Metric = "active_chains"
	MetricTokenHoldings     Metric = "token_holdings"
	MetricNFTHoldings       Metric = "nft_holdings"
	MetricDefiPositions     Metric = "defi_positions"
	MetricGasSpent          Metric = "gas_spent"
	MetricStakingPositions  Metric = "staking_positions"
	MetricAirdrops          Metric = "airdrops"
	MetricDAOVotes          Metric = "dao_votes"
	MetricWeb3Domain        Metric = "web3_domain"
	MetricTransactionVolume Metric = "transaction_volume"
	MetricTransactionCount  Metric = "transaction_count"
	MetricTokenInteractions Metric = "token_interactions"

	// Telegram metrics.
	MetricGroupCount      Metric = "group_count"
	MetricMessageCount    Metric = "message_count"
	MetricPinnedMessages  Metric = "pinned_messages"
	MetricMediaMessages   Metric = "media_messages"
	MetricHashtags        Metric = "hashtags"
	MetricCanSendPolls    Metric = "can_send_polls"
	MetricLeadership      Metric = "leadership"
	MetricBotInteractions Metric = "bot_interactions"
	MetricVerifiedGroups  Metric = "verified_groups"
	MetricQuickResponses  Metric = "quick_responses"
	MetricStickerMessages Metric = "sticker_messages"
	MetricGifMessages     Metric = "gif_messages"
	MetricMentions        Metric = "mentions"
)

// MetricSet is the snapshot of badge-driving values for one evaluation.
// Missing entries read as zero.
type MetricSet map[Metric]float64

// Get returns the metric value, zero when absent.
func (m MetricSet) Get(name Metric) float64 {
	return m[name]
}

// CollectMetrics computes every sourced badge metric from the payloads that
// are present. Absent payloads contribute nothing, so every badge they drive
// evaluates against zero.
func CollectMetrics(twitter *payload.TwitterUser, wallet *payload.Wallet, groups []payload.TelegramGroup, messages []payload.TelegramMessage, now time.Time) MetricSet {
	metrics := MetricSet{}

	if twitter != nil {
		metrics[MetricFollowers] = twitter.Followers
		metrics[MetricTweetHundreds] = twitter.Statuses / 100
		metrics[MetricFavourites] = twitter.Favourites
		metrics[MetricMediaCount] = twitter.MediaCount
		metrics[MetricListedCount] = twitter.Listed
		metrics[MetricBlueVerified] = boolMetric(twitter.BlueVerified)
		metrics[MetricPinnedTweet] = boolMetric(twitter.HasPinnedTweet)
		metrics[MetricSuperFollow] = boolMetric(twitter.SuperFollowEligible)
		metrics[MetricCreatorSubscriptions] = twitter.CreatorSubscriptions
		metrics[MetricAccountAgeYears] = AccountAgeYears(twitter.CreatedAt, now)
		metrics[MetricRetweets] = twitter.Retweets
		metrics[MetricQuotes] = twitter.Quotes
		metrics[MetricReplies] = twitter.Replies
	}

	if wallet != nil {
		metrics[MetricActiveChains] = float64(len(wallet.ActiveChains))
		metrics[MetricTokenHoldings] = float64(len(wallet.TokenBalances))
		metrics[MetricNFTHoldings] = float64(len(wallet.NFTs))
		metrics[MetricDefiPositions] = float64(len(wallet.DefiPositions))
		metrics[MetricWeb3Domain] = boolMetric(wallet.ResolvedDomain != "")
		metrics[MetricTransactionCount] = wallet.TransactionCount
		metrics[MetricTokenInteractions] = wallet.UniqueTokenInteractions
	}

	if groups != nil || messages != nil {
		metrics[MetricGroupCount] = float64(len(groups))
		metrics[MetricMessageCount] = float64(len(messages))
		metrics[MetricPinnedMessages] = float64(countPinned(messages))
		metrics[MetricMediaMessages] = float64(countContent(messages, contentPhoto))
		metrics[MetricHashtags] = float64(countCaptionEntities(messages, entityHashtag))
		metrics[MetricCanSendPolls] = boolMetric(anyCanSendPolls(groups))
		metrics[MetricLeadership] = boolMetric(anyCanPinMessages(groups))
		metrics[MetricBotInteractions] = float64(countBotInteractions(messages))
		metrics[MetricStickerMessages] = float64(countContent(messages, contentSticker))
		metrics[MetricGifMessages] = float64(countContent(messages, contentAnimation))
		metrics[MetricMentions] = float64(countEntities(messages, entityMention))
	}

	return metrics
}

func boolMetric(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
