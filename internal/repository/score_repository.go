package repository

import (
	"errors"

	"github.com/fomoscore/backend/internal/model"
	"github.com/fomoscore/backend/internal/scoring"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScoreUpdate carries the fields of one freshly calculated evaluation. Nil
// pointers mean the category's source data was absent and the stored value
// must be preserved.
type ScoreUpdate struct {
	Username *string
	Email    *string

	SocialScore    *float64
	CryptoScore    *float64
	NFTScore       *float64
	CommunityScore *float64
	TelegramScore  *float64

	Title  string
	Badges scoring.BadgeSet

	WalletAddress string
	WalletScore   float64
}

// WalletEntry pairs one linked address with its freshly computed score.
type WalletEntry struct {
	Address string
	Score   float64
}

type ScoreRepository interface {
	FindByPrivyID(privyID string) (*model.ScoreRecord, error)
	FindByUsername(username string) (*model.ScoreRecord, error)
	Upsert(privyID string, update ScoreUpdate) (*model.ScoreRecord, error)
	RefreshWalletScores(privyID string, wallets []WalletEntry, crypto, nft float64) (*model.ScoreRecord, error)
	TopByTotal(limit int) ([]model.ScoreRecord, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) FindByPrivyID(privyID string) (*model.ScoreRecord, error) {
	var record model.ScoreRecord
	err := r.db.Preload("Wallets").Where("privy_id = ?", privyID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *scoreRepository) FindByUsername(username string) (*model.ScoreRecord, error) {
	var record model.ScoreRecord
	err := r.db.Preload("Wallets").Where("username = ?", username).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert merges a fresh evaluation into the stored record under a row lock so
// concurrent recalculations for the same user cannot interleave their
// read-modify-write cycles.
func (r *scoreRepository) Upsert(privyID string, update ScoreUpdate) (*model.ScoreRecord, error) {
	var result *model.ScoreRecord

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var record model.ScoreRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("privy_id = ?", privyID).First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = newScoreRecord(privyID)
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		applyUpdate(&record, update)
		record.TotalScore = record.SocialScore + record.CryptoScore + record.NFTScore +
			record.CommunityScore + record.TelegramScore

		if err := tx.Model(&record).Updates(map[string]interface{}{
			"username":        record.Username,
			"email":           record.Email,
			"social_score":    record.SocialScore,
			"crypto_score":    record.CryptoScore,
			"nft_score":       record.NFTScore,
			"community_score": record.CommunityScore,
			"telegram_score":  record.TelegramScore,
			"total_score":     record.TotalScore,
			"title":           record.Title,
			"badges":          record.Badges,
		}).Error; err != nil {
			return err
		}

		if update.WalletAddress != "" {
			if err := upsertWallet(tx, record.ID, update.WalletAddress, update.WalletScore); err != nil {
				return err
			}
		}

		if err := tx.Preload("Wallets").First(&record, "id = ?", record.ID).Error; err != nil {
			return err
		}
		result = &record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RefreshWalletScores rescoring path: replaces every linked wallet's score
// and folds the combined wallet result into the crypto and nft categories.
func (r *scoreRepository) RefreshWalletScores(privyID string, wallets []WalletEntry, crypto, nft float64) (*model.ScoreRecord, error) {
	var result *model.ScoreRecord

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var record model.ScoreRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("privy_id = ?", privyID).First(&record).Error
		if err != nil {
			return err
		}

		for _, wallet := range wallets {
			if err := upsertWallet(tx, record.ID, wallet.Address, wallet.Score); err != nil {
				return err
			}
		}

		record.CryptoScore = crypto
		record.NFTScore = nft
		record.TotalScore = record.SocialScore + record.CryptoScore + record.NFTScore +
			record.CommunityScore + record.TelegramScore
		if err := tx.Model(&record).Updates(map[string]interface{}{
			"crypto_score": record.CryptoScore,
			"nft_score":    record.NFTScore,
			"total_score":  record.TotalScore,
		}).Error; err != nil {
			return err
		}

		if err := tx.Preload("Wallets").First(&record, "id = ?", record.ID).Error; err != nil {
			return err
		}
		result = &record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *scoreRepository) TopByTotal(limit int) ([]model.ScoreRecord, error) {
	var records []model.ScoreRecord
	err := r.db.Preload("Wallets").
		Order("total_score DESC").Limit(limit).Find(&records).Error
	return records, err
}

// newScoreRecord seeds a first-contact record with the category floors, so a
// calculation that only supplies some sources still totals as if the absent
// categories had scored zero and floored.
func newScoreRecord(privyID string) model.ScoreRecord {
	return model.ScoreRecord{
		PrivyID:        privyID,
		SocialScore:    scoring.Floors.Social,
		CryptoScore:    scoring.Floors.Crypto,
		NFTScore:       scoring.Floors.NFT,
		CommunityScore: scoring.Floors.Community,
		TelegramScore:  scoring.Floors.Telegram,
	}
}

func applyUpdate(record *model.ScoreRecord, update ScoreUpdate) {
	if update.Username != nil {
		record.Username = update.Username
	}
	if update.Email != nil {
		record.Email = update.Email
	}
	if update.SocialScore != nil {
		record.SocialScore = *update.SocialScore
	}
	if update.CryptoScore != nil {
		record.CryptoScore = *update.CryptoScore
	}
	if update.NFTScore != nil {
		record.NFTScore = *update.NFTScore
	}
	if update.CommunityScore != nil {
		record.CommunityScore = *update.CommunityScore
	}
	if update.TelegramScore != nil {
		record.TelegramScore = *update.TelegramScore
	}
	record.Title = update.Title
	record.Badges = mergeBadges(record.Badges, update.Badges)
}

// mergeBadges keeps previously earned badges and overlays newly earned ones.
// A badge is never revoked by a later calculation; a re-earned badge takes
// the newer tier and value.
func mergeBadges(existing, fresh scoring.BadgeSet) scoring.BadgeSet {
	merged := make(scoring.BadgeSet, len(existing)+len(fresh))
	for name, award := range existing {
		merged[name] = award
	}
	for name, award := range fresh {
		merged[name] = award
	}
	return merged
}

func upsertWallet(tx *gorm.DB, recordID uuid.UUID, address string, score float64) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "score_record_id"}, {Name: "wallet_address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"score": score}),
	}).Create(&model.WalletScore{
		ScoreRecordID: recordID,
		WalletAddress: address,
		Score:         score,
	}).Error
}
