package model

import (
	"time"

	"github.com/fomoscore/backend/internal/scoring"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoreRecord is the persisted reputation aggregate for one privy identity.
// Category scores are merged on update: only categories whose raw payload was
// present on a given calculation overwrite the stored value.
type ScoreRecord struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PrivyID string    `gorm:"size:255;uniqueIndex;not null" json:"privy_id"`

	Username *string `gorm:"size:100" json:"username,omitempty"`
	Email    *string `gorm:"size:100" json:"email,omitempty"`

	SocialScore    float64 `gorm:"default:0" json:"social_score"`
	CryptoScore    float64 `gorm:"default:0" json:"crypto_score"`
	NFTScore       float64 `gorm:"default:0" json:"nft_score"`
	CommunityScore float64 `gorm:"default:0" json:"community_score"`
	TelegramScore  float64 `gorm:"default:0" json:"telegram_score"`
	TotalScore     float64 `gorm:"default:0;index" json:"total_score"`

	Title  string           `gorm:"size:100" json:"title"`
	Badges scoring.BadgeSet `gorm:"serializer:json" json:"badges"`

	Wallets []WalletScore `gorm:"constraint:OnDelete:CASCADE" json:"wallets"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *ScoreRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// WalletScore is one scored wallet address attached to a record. A user can
// link several wallets; each keeps its own score.
type WalletScore struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ScoreRecordID uuid.UUID `gorm:"type:uuid;index:idx_record_wallet,unique,priority:1;not null" json:"-"`
	WalletAddress string    `gorm:"size:100;index:idx_record_wallet,unique,priority:2;not null" json:"wallet_address"`
	Score         float64   `gorm:"not null;default:10" json:"score"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
