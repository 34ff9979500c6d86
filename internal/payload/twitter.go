package payload

import "time"

// twitterTimeLayout is the legacy created_at format the Twitter API emits.
const twitterTimeLayout = "Mon Jan 02 15:04:05 -0700 2006"

// TwitterUser is the projection of the nested user-result object returned by
// the Twitter API. Every field the scorers and badge rules consume is listed
// here; anything absent in the raw payload projects to its zero value.
type TwitterUser struct {
	ScreenName string

	Followers            float64
	Favourites           float64
	MediaCount           float64
	Listed               float64
	Statuses             float64
	CreatorSubscriptions float64
	Friends              float64
	Retweets             float64
	Quotes               float64
	Replies              float64

	BlueVerified        bool
	SuperFollowEligible bool
	HasPinnedTweet      bool

	// CreatedAt is the account creation time; zero when absent or unparseable,
	// which the scorer treats as zero account age.
	CreatedAt time.Time
}

// ProjectTwitter extracts a TwitterUser from a raw API response. The user
// node may sit at data.user.result or directly at result depending on the
// endpoint; legacy fields may additionally be nested one level deeper under
// "legacy". All three shapes are handled.
func ProjectTwitter(raw map[string]any) TwitterUser {
	node := digMap(raw, "data", "user", "result")
	if node == nil {
		node = digMap(raw, "result")
	}
	if node == nil {
		node = raw
	}

	legacy := digMap(node, "legacy")

	field := func(key string) float64 {
		if legacy != nil {
			if v := digFloat(legacy, key); v != 0 {
				return v
			}
		}
		return digFloat(node, key)
	}
	flag := func(key string) bool {
		return digBool(node, key) || (legacy != nil && digBool(legacy, key))
	}
	str := func(key string) string {
		if legacy != nil {
			if v := digString(legacy, key); v != "" {
				return v
			}
		}
		return digString(node, key)
	}

	u := TwitterUser{
		ScreenName:           str("screen_name"),
		Followers:            field("followers_count"),
		Favourites:           field("favourites_count"),
		MediaCount:           field("media_count"),
		Listed:               field("listed_count"),
		Statuses:             field("statuses_count"),
		CreatorSubscriptions: field("creator_subscriptions_count"),
		Friends:              field("friends_count"),
		Retweets:             field("retweet_count"),
		Quotes:               field("quote_count"),
		Replies:              field("reply_count"),
		BlueVerified:         flag("is_blue_verified"),
		SuperFollowEligible:  flag("super_follow_eligible"),
	}

	pinned := digList(node, "pinned_tweet_ids_str")
	if pinned == nil && legacy != nil {
		pinned = digList(legacy, "pinned_tweet_ids_str")
	}
	u.HasPinnedTweet = len(pinned) > 0

	if createdAt := str("created_at"); createdAt != "" {
		if t, err := time.Parse(twitterTimeLayout, createdAt); err == nil {
			u.CreatedAt = t
		}
	}

	return u
}
