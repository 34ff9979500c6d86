package scoring

import (
	"strings"

	"github.com/fomoscore/backend/internal/payload"
)

// EngageKeywords are scanned in group and message text for the engagement
// bonus.
var EngageKeywords = []string{"cluster", "protocol", "ai"}

// KeywordMatches accumulates per-keyword hit counts across scanned text
// blobs.
type KeywordMatches struct {
	TotalCount int            `json:"totalCount"`
	Keywords   map[string]int `json:"keywords"`
}

// NewKeywordMatches returns an accumulator with every keyword present at
// zero.
func NewKeywordMatches() *KeywordMatches {
	keywords := make(map[string]int, len(EngageKeywords))
	for _, k := range EngageKeywords {
		keywords[k] = 0
	}
	return &KeywordMatches{Keywords: keywords}
}

// ScanText counts whole-word keyword occurrences in one text blob. A match
// must not be preceded or followed by an alphanumeric character, except that
// a leading '#' counts as a boundary (so "#protocol" matches but "rain" does
// not contain "ai"). Each keyword counts at most once per blob.
func (m *KeywordMatches) ScanText(text string) {
	if text == "" {
		return
	}

	lower := strings.ToLower(text)

	for _, keyword := range EngageKeywords {
		searchPos := 0
		for {
			found := strings.Index(lower[searchPos:], keyword)
			if found == -1 {
				break
			}
			found += searchPos

			wordStart := found == 0 ||
				!isAlnum(lower[found-1]) ||
				lower[found-1] == '#'
			wordEnd := found+len(keyword) >= len(lower) ||
				!isAlnum(lower[found+len(keyword)])

			if wordStart && wordEnd {
				m.Keywords[keyword]++
				m.TotalCount++
				break // count each keyword only once per text
			}

			searchPos = found + 1
		}
	}
}

// ScanTelegram runs the keyword scan across every group and message text
// blob.
func ScanTelegram(groups []payload.TelegramGroup, messages []payload.TelegramMessage) *KeywordMatches {
	matches := NewKeywordMatches()
	for _, g := range groups {
		matches.ScanText(g.Text())
	}
	for _, msg := range messages {
		matches.ScanText(msg.Text())
	}
	return matches
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
