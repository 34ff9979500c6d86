package scoring

// Weight tables for the category scorers. These are configuration, fixed for
// the process lifetime; per-metric multipliers unless noted as flat bonuses.

// Twitter weights.
const (
	weightFollowers     = 0.001  // per follower
	weightEngagement    = 0.0001 // per engagement unit (favourites + media + listed)
	weightVerification  = 5.0    // flat bonus if blue verified
	weightTweetFreq     = 0.001  // per tweet
	weightSubscriptions = 2.0    // per creator subscription
	weightAccountAge    = 0.1    // per year, fractional
	weightMedia         = 0.01   // per media item
	weightPinned        = 5.0    // flat bonus if a pinned tweet exists
	weightFriends       = 0.001  // per friend
	weightListed        = 0.01   // per list membership
	weightSuperFollow   = 5.0    // flat bonus if super-follow eligible
	weightRetweets      = 0.005  // per retweet
	weightQuotes        = 0.005  // per quote tweet
	weightReplies       = 0.002  // per reply
)

// Wallet weights.
const (
	weightActiveChains      = 5.0  // per active chain
	weightNativeBalance     = 10.0 // per unit of native balance
	weightTokenHoldings     = 2.0  // per token
	weightNFTHoldings       = 5.0  // per NFT
	weightDefiPositions     = 5.0  // per DeFi position
	weightWeb3Domain        = 5.0  // flat bonus if a domain resolves
	weightTransactionCount  = 0.01 // per transaction
	weightTokenInteractions = 1.0  // per unique token interacted with
)

// Telegram weights.
const (
	weightGroupCount      = 2.0 // per group
	weightMessageFreq     = 0.1 // per message
	weightPinnedMessages  = 5.0 // per pinned message
	weightMediaMessages   = 2.0 // per photo message
	weightHashtags        = 1.0 // per hashtag caption entity
	weightPolls           = 2.0 // flat bonus if any group grants can_send_polls
	weightLeadership      = 5.0 // flat bonus if any group grants can_pin_messages
	weightBotInteractions = 1.0 // per bot interaction
	weightStickerMessages = 0.5 // per sticker message
	weightGifMessages     = 0.5 // per GIF message
	weightMentions        = 1.0 // per mention entity
)
