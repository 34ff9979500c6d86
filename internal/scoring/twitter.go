package scoring

import (
	"time"

	"github.com/fomoscore/backend/internal/payload"
)

// yearDuration is one continuous year including leap days, so the account-age
// weight can apply fractionally.
const yearDuration = time.Duration(365.25 * 24 * float64(time.Hour))

// AccountAgeYears returns the continuous age of an account in years. A zero
// or future creation time counts as zero age.
func AccountAgeYears(createdAt, now time.Time) float64 {
	if createdAt.IsZero() || !createdAt.Before(now) {
		return 0
	}
	return float64(now.Sub(createdAt)) / float64(yearDuration)
}

// TwitterScore maps a Twitter user projection to the raw social sub-score.
func TwitterScore(u payload.TwitterUser, now time.Time) float64 {
	engagement := u.Favourites + u.MediaCount + u.Listed

	score := u.Followers*weightFollowers +
		engagement*weightEngagement +
		u.Statuses*weightTweetFreq +
		u.CreatorSubscriptions*weightSubscriptions +
		AccountAgeYears(u.CreatedAt, now)*weightAccountAge +
		u.MediaCount*weightMedia +
		u.Friends*weightFriends +
		u.Listed*weightListed +
		u.Retweets*weightRetweets +
		u.Quotes*weightQuotes +
		u.Replies*weightReplies

	if u.BlueVerified {
		score += weightVerification
	}
	if u.HasPinnedTweet {
		score += weightPinned
	}
	if u.SuperFollowEligible {
		score += weightSuperFollow
	}

	return score
}
