package scoring

import "github.com/fomoscore/backend/internal/payload"

// Telegram content discriminators and entity types consumed by the scorers.
const (
	contentPhoto     = "messagePhoto"
	contentSticker   = "messageSticker"
	contentAnimation = "messageAnimation"

	entityHashtag = "textEntityTypeHashtag"
	entityMention = "textEntityTypeMention"
)

// CommunityScore maps group membership to the raw community sub-score.
func CommunityScore(groups []payload.TelegramGroup) float64 {
	return float64(len(groups)) * weightGroupCount
}

// TelegramScore maps group and message activity to the raw telegram
// sub-score.
func TelegramScore(groups []payload.TelegramGroup, messages []payload.TelegramMessage) float64 {
	score := float64(len(groups))*weightGroupCount +
		float64(len(messages))*weightMessageFreq +
		float64(countPinned(messages))*weightPinnedMessages +
		float64(countContent(messages, contentPhoto))*weightMediaMessages +
		float64(countCaptionEntities(messages, entityHashtag))*weightHashtags +
		float64(countBotInteractions(messages))*weightBotInteractions +
		float64(countContent(messages, contentSticker))*weightStickerMessages +
		float64(countContent(messages, contentAnimation))*weightGifMessages +
		float64(countEntities(messages, entityMention))*weightMentions

	if anyCanSendPolls(groups) {
		score += weightPolls
	}
	if anyCanPinMessages(groups) {
		score += weightLeadership
	}

	return score
}

func countPinned(messages []payload.TelegramMessage) int {
	n := 0
	for _, m := range messages {
		if m.IsPinned {
			n++
		}
	}
	return n
}

func countContent(messages []payload.TelegramMessage, contentType string) int {
	n := 0
	for _, m := range messages {
		if m.ContentType == contentType {
			n++
		}
	}
	return n
}

func countBotInteractions(messages []payload.TelegramMessage) int {
	n := 0
	for _, m := range messages {
		if m.ViaBotUserID != 0 {
			n++
		}
	}
	return n
}

func countCaptionEntities(messages []payload.TelegramMessage, entityType string) int {
	n := 0
	for _, m := range messages {
		for _, t := range m.CaptionEntityTypes {
			if t == entityType {
				n++
			}
		}
	}
	return n
}

func countEntities(messages []payload.TelegramMessage, entityType string) int {
	n := 0
	for _, m := range messages {
		for _, t := range m.EntityTypes {
			if t == entityType {
				n++
			}
		}
	}
	return n
}

func anyCanSendPolls(groups []payload.TelegramGroup) bool {
	for _, g := range groups {
		if g.CanSendPolls {
			return true
		}
	}
	return false
}

func anyCanPinMessages(groups []payload.TelegramGroup) bool {
	for _, g := range groups {
		if g.CanPinMessages {
			return true
		}
	}
	return false
}
