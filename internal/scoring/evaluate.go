package scoring

import (
	"time"

	"github.com/fomoscore/backend/internal/payload"
)

// Input carries the projected payloads for one evaluation. Nil pointers and
// nil slices mean the source was absent; the affected categories fall back to
// their floors and their badges evaluate against zero metrics.
type Input struct {
	Twitter  *payload.TwitterUser
	Wallet   *payload.Wallet
	Groups   []payload.TelegramGroup
	Messages []payload.TelegramMessage

	// TelegramPresent distinguishes "vault returned no items" from "vault was
	// never queried"; both score identically but only the former overwrites
	// persisted telegram fields.
	TelegramPresent bool

	// Now anchors account-age computation; the zero value means time.Now().
	Now time.Time
}

// Evaluation is the full scoring output: raw and clamped sub-scores, total,
// badge set and title. Deterministic and side-effect free for a given Input.
type Evaluation struct {
	Raw    SubScores
	Scores SubScores
	Total  float64
	Badges BadgeSet
	Title  string
}

// Evaluate runs the two output pipelines (score; badges/title) over the same
// immutable input.
func Evaluate(in Input) Evaluation {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	var raw SubScores
	if in.Twitter != nil {
		raw.Social = TwitterScore(*in.Twitter, now)
	}
	if in.Wallet != nil {
		raw.Crypto = CryptoScore(*in.Wallet)
		raw.NFT = NFTScore(*in.Wallet)
	}
	if in.TelegramPresent {
		raw.Community = CommunityScore(in.Groups)
		raw.Telegram = TelegramScore(in.Groups, in.Messages)
	}

	scores, total := Aggregate(raw)

	var groups []payload.TelegramGroup
	var messages []payload.TelegramMessage
	if in.TelegramPresent {
		groups = in.Groups
		messages = in.Messages
		if groups == nil {
			groups = []payload.TelegramGroup{}
		}
		if messages == nil {
			messages = []payload.TelegramMessage{}
		}
	}

	badges := AssignBadges(CollectMetrics(in.Twitter, in.Wallet, groups, messages, now))

	return Evaluation{
		Raw:    raw,
		Scores: scores,
		Total:  total,
		Badges: badges,
		Title:  ResolveTitle(badges),
	}
}
