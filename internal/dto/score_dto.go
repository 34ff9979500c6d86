package dto

import "github.com/fomoscore/backend/internal/scoring"

// CalculateScoreRequest triggers a full recalculation. Every source field is
// optional; absent sources keep their stored category scores.
type CalculateScoreRequest struct {
	PrivyID   string `json:"privyId" binding:"required,max=255"`
	Username  string `json:"username" binding:"omitempty,max=100"`
	Email     string `json:"email" binding:"omitempty,email,max=100"`
	Address   string `json:"address" binding:"omitempty,max=100"`
	UserDID   string `json:"userDid" binding:"omitempty,max=255"`
	AuthToken string `json:"authToken" binding:"omitempty"`
}

// WalletScoreRequest rescores one linked wallet.
type WalletScoreRequest struct {
	PrivyID       string `json:"privyId" binding:"required,max=255"`
	WalletAddress string `json:"walletAddress" binding:"required,max=100"`
}

// TelegramEngagementRequest runs the Verida engagement pipeline.
type TelegramEngagementRequest struct {
	UserDID   string `json:"userDid" binding:"required,max=255"`
	AuthToken string `json:"authToken" binding:"required"`
}

type WalletResponse struct {
	WalletAddress string  `json:"wallet_address"`
	Score         float64 `json:"score"`
}

type ScoreResponse struct {
	PrivyID        string                        `json:"privy_id"`
	Username       string                        `json:"username,omitempty"`
	SocialScore    float64                       `json:"social_score"`
	CryptoScore    float64                       `json:"crypto_score"`
	NFTScore       float64                       `json:"nft_score"`
	CommunityScore float64                       `json:"community_score"`
	TelegramScore  float64                       `json:"telegram_score"`
	TotalScore     float64                       `json:"total_score"`
	Title          string                        `json:"title"`
	Badges         map[string]scoring.BadgeAward `json:"badges"`
	BadgeArt       map[string]string             `json:"badge_art,omitempty"`
	Wallets        []WalletResponse              `json:"wallets"`
	Rank           int64                         `json:"rank,omitempty"`
	UpdatedAt      string                        `json:"updated_at"`
}

type TelegramEngagementResponse struct {
	GroupCount     int                    `json:"group_count"`
	MessageCount   int                    `json:"message_count"`
	EngagementRaw  float64                `json:"engagement_raw"`
	EngagementFOMO float64                `json:"engagement_fomo"`
	Badges         []string               `json:"badges"`
	Keywords       scoring.KeywordMatches `json:"keyword_matches"`
}

type LeaderboardEntry struct {
	PrivyID    string  `json:"privy_id"`
	Username   string  `json:"username,omitempty"`
	TotalScore float64 `json:"total_score"`
	Title      string  `json:"title"`
	Rank       int     `json:"rank"`
}
