package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fomoscore/backend/internal/dto"
	"github.com/fomoscore/backend/internal/fetcher"
	"github.com/fomoscore/backend/internal/model"
	"github.com/fomoscore/backend/internal/repository"
	"github.com/fomoscore/backend/internal/scoring"
	"github.com/fomoscore/backend/pkg/apperror"
	"github.com/fomoscore/backend/pkg/logger"
	"gorm.io/gorm"
)

type stubRepo struct {
	records    map[string]*model.ScoreRecord
	lastUpdate repository.ScoreUpdate
}

func newStubRepo() *stubRepo {
	return &stubRepo{records: map[string]*model.ScoreRecord{}}
}

func (r *stubRepo) FindByPrivyID(privyID string) (*model.ScoreRecord, error) {
	record, ok := r.records[privyID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

func (r *stubRepo) FindByUsername(username string) (*model.ScoreRecord, error) {
	for _, record := range r.records {
		if record.Username != nil && *record.Username == username {
			return record, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) Upsert(privyID string, update repository.ScoreUpdate) (*model.ScoreRecord, error) {
	r.lastUpdate = update

	record, ok := r.records[privyID]
	if !ok {
		record = &model.ScoreRecord{
			PrivyID:        privyID,
			SocialScore:    scoring.Floors.Social,
			CryptoScore:    scoring.Floors.Crypto,
			NFTScore:       scoring.Floors.NFT,
			CommunityScore: scoring.Floors.Community,
			TelegramScore:  scoring.Floors.Telegram,
			Badges:         scoring.BadgeSet{},
		}
		r.records[privyID] = record
	}
	if update.Username != nil {
		record.Username = update.Username
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
	for name, award := range update.Badges {
		record.Badges[name] = award
	}
	record.TotalScore = record.SocialScore + record.CryptoScore + record.NFTScore +
		record.CommunityScore + record.TelegramScore
	return record, nil
}

func (r *stubRepo) RefreshWalletScores(privyID string, wallets []repository.WalletEntry, crypto, nft float64) (*model.ScoreRecord, error) {
	record, ok := r.records[privyID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	record.CryptoScore = crypto
	record.NFTScore = nft
	record.TotalScore = record.SocialScore + record.CryptoScore + record.NFTScore +
		record.CommunityScore + record.TelegramScore
	record.Wallets = record.Wallets[:0]
	for _, wallet := range wallets {
		record.Wallets = append(record.Wallets, model.WalletScore{
			WalletAddress: wallet.Address,
			Score:         wallet.Score,
		})
	}
	return record, nil
}

func (r *stubRepo) TopByTotal(limit int) ([]model.ScoreRecord, error) {
	var records []model.ScoreRecord
	for _, record := range r.records {
		records = append(records, *record)
	}
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

type stubTwitter struct {
	raw map[string]any
	err error
}

func (s *stubTwitter) UserDetails(ctx context.Context, username string) (map[string]any, error) {
	return s.raw, s.err
}

type stubWallet struct {
	raw    map[string]any
	byAddr map[string]map[string]any
	err    error
}

func (s *stubWallet) WalletDetails(ctx context.Context, address string) (map[string]any, error) {
	if s.byAddr != nil {
		return s.byAddr[address], s.err
	}
	return s.raw, s.err
}

type stubTelegram struct {
	data fetcher.TelegramData
	err  error
}

func (s *stubTelegram) TelegramData(ctx context.Context, did, authToken string) (fetcher.TelegramData, error) {
	return s.data, s.err
}

type nopEvents struct{}

func (nopEvents) PublishScoreChange(ctx context.Context, record *model.ScoreRecord) {}
func (nopEvents) LeaderboardRank(ctx context.Context, privyID string) (int64, error) {
	return 0, nil
}

type nopSearch struct{}

func (nopSearch) IndexRecord(record *model.ScoreRecord) error { return nil }
func (nopSearch) SearchRecords(query string, limit int) ([]map[string]any, error) {
	return nil, nil
}

type nopBadgeArt struct{}

func (nopBadgeArt) UploadBadgeArt(ctx context.Context, privyID string, badges scoring.BadgeSet) map[string]string {
	return nil
}

func newTestService(repo repository.ScoreRepository, tw fetcher.TwitterSource, w fetcher.WalletSource, tg fetcher.TelegramSource) ScoreService {
	return NewScoreService(repo, tw, w, tg, nopEvents{}, nopSearch{}, nopBadgeArt{}, nil, time.Second, time.Second, logger.Nop())
}

func twitterPayload(followers float64) map[string]any {
	return map[string]any{
		"result": map[string]any{
			"legacy": map[string]any{
				"followers_count": followers,
			},
		},
	}
}

func TestCalculateScoreTwitterOnly(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, &stubTwitter{raw: twitterPayload(2_000_000)}, &stubWallet{}, &stubTelegram{})

	resp, err := svc.CalculateScore(context.Background(), dto.CalculateScoreRequest{
		PrivyID:  "privy-1",
		Username: "satoshi",
	})
	if err != nil {
		t.Fatalf("CalculateScore: %v", err)
	}

	if repo.lastUpdate.SocialScore == nil {
		t.Fatal("social score was not written")
	}
	if *repo.lastUpdate.SocialScore != 50 {
		t.Errorf("social score = %v, want capped 50", *repo.lastUpdate.SocialScore)
	}
	if repo.lastUpdate.CryptoScore != nil || repo.lastUpdate.TelegramScore != nil {
		t.Error("absent sources must not write their categories")
	}

	// 50 social + floors 15 + 5 + 10 + 5
	if resp.TotalScore != 85 {
		t.Errorf("TotalScore = %v, want 85", resp.TotalScore)
	}
	if _, ok := resp.Badges["Influence Investor"]; !ok {
		t.Error("expected the follower badge to be awarded")
	}
}

func TestCalculateScoreFirstContactBaseline(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, &stubTwitter{}, &stubWallet{}, &stubTelegram{})

	resp, err := svc.CalculateScore(context.Background(), dto.CalculateScoreRequest{
		PrivyID: "privy-1",
	})
	if err != nil {
		t.Fatalf("CalculateScore: %v", err)
	}

	// No sources at all: every category persists at its floor.
	if resp.TotalScore != 45 {
		t.Errorf("TotalScore = %v, want the empty-profile baseline 45", resp.TotalScore)
	}
	if resp.CryptoScore != 15 || resp.NFTScore != 5 {
		t.Errorf("crypto/nft = %v/%v, want the floors 15/5", resp.CryptoScore, resp.NFTScore)
	}
}

func TestCalculateScoreFetchFailureDegrades(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo,
		&stubTwitter{err: errors.New("upstream down")},
		&stubWallet{raw: map[string]any{"nativeBalance": 2.0}},
		&stubTelegram{},
	)

	_, err := svc.CalculateScore(context.Background(), dto.CalculateScoreRequest{
		PrivyID:  "privy-1",
		Username: "satoshi",
		Address:  "0xabc",
	})
	if err != nil {
		t.Fatalf("CalculateScore: %v", err)
	}

	if repo.lastUpdate.SocialScore != nil {
		t.Error("failed twitter fetch must not overwrite the social score")
	}
	if repo.lastUpdate.CryptoScore == nil {
		t.Fatal("wallet category missing despite a successful fetch")
	}
	if *repo.lastUpdate.CryptoScore != 20 {
		t.Errorf("crypto score = %v, want 20", *repo.lastUpdate.CryptoScore)
	}
}

func TestCalculateScorePreservesStoredCategories(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, &stubTwitter{raw: twitterPayload(50_000)}, &stubWallet{}, &stubTelegram{})

	// First run scores twitter only.
	if _, err := svc.CalculateScore(context.Background(), dto.CalculateScoreRequest{
		PrivyID:  "privy-1",
		Username: "satoshi",
	}); err != nil {
		t.Fatalf("first CalculateScore: %v", err)
	}
	firstSocial := repo.records["privy-1"].SocialScore

	// Second run has no sources at all; stored categories must survive.
	if _, err := svc.CalculateScore(context.Background(), dto.CalculateScoreRequest{
		PrivyID: "privy-1",
	}); err != nil {
		t.Fatalf("second CalculateScore: %v", err)
	}

	if repo.records["privy-1"].SocialScore != firstSocial {
		t.Errorf("stored social score changed from %v to %v with no source data",
			firstSocial, repo.records["privy-1"].SocialScore)
	}
}

func TestGetScoreNotFound(t *testing.T) {
	svc := newTestService(newStubRepo(), &stubTwitter{}, &stubWallet{}, &stubTelegram{})

	_, err := svc.GetScore(context.Background(), "missing")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRescoreWalletNotFound(t *testing.T) {
	svc := newTestService(newStubRepo(), &stubTwitter{}, &stubWallet{raw: map[string]any{}}, &stubTelegram{})

	_, err := svc.RescoreWallet(context.Background(), dto.WalletScoreRequest{
		PrivyID:       "missing",
		WalletAddress: "0xabc",
	})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRescoreWalletUpdatesCrypto(t *testing.T) {
	repo := newStubRepo()
	repo.records["privy-1"] = &model.ScoreRecord{PrivyID: "privy-1", Badges: scoring.BadgeSet{}}

	svc := newTestService(repo, &stubTwitter{}, &stubWallet{raw: map[string]any{
		"nativeBalance": 1.0,
		"activeChains":  []any{"eth", "polygon"},
	}}, &stubTelegram{})

	resp, err := svc.RescoreWallet(context.Background(), dto.WalletScoreRequest{
		PrivyID:       "privy-1",
		WalletAddress: "0xabc",
	})
	if err != nil {
		t.Fatalf("RescoreWallet: %v", err)
	}

	// chains 10 + native 10
	if resp.CryptoScore != 20 {
		t.Errorf("CryptoScore = %v, want 20", resp.CryptoScore)
	}
	if resp.NFTScore != 5 {
		t.Errorf("NFTScore = %v, want the floor 5", resp.NFTScore)
	}
	if len(resp.Wallets) != 1 || resp.Wallets[0].WalletAddress != "0xabc" {
		t.Errorf("Wallets = %+v", resp.Wallets)
	}
}

func TestRescoreWalletRefreshesAllLinkedWallets(t *testing.T) {
	repo := newStubRepo()
	repo.records["privy-1"] = &model.ScoreRecord{
		PrivyID: "privy-1",
		Badges:  scoring.BadgeSet{},
		Wallets: []model.WalletScore{{WalletAddress: "0xold", Score: 15}},
	}

	// Each wallet contributes a raw crypto score of 10.
	svc := newTestService(repo, &stubTwitter{}, &stubWallet{byAddr: map[string]map[string]any{
		"0xold": {"nativeBalance": 1.0},
		"0xnew": {"activeChains": []any{"eth", "base"}},
	}}, &stubTelegram{})

	resp, err := svc.RescoreWallet(context.Background(), dto.WalletScoreRequest{
		PrivyID:       "privy-1",
		WalletAddress: "0xnew",
	})
	if err != nil {
		t.Fatalf("RescoreWallet: %v", err)
	}

	// The previously linked wallet contributes alongside the new one.
	if resp.CryptoScore != 20 {
		t.Errorf("CryptoScore = %v, want combined 20", resp.CryptoScore)
	}
	if len(resp.Wallets) != 2 {
		t.Fatalf("Wallets = %+v, want both addresses rescored", resp.Wallets)
	}
	for _, wallet := range resp.Wallets {
		if wallet.Score != 10 {
			t.Errorf("wallet %s score = %v, want refreshed 10", wallet.WalletAddress, wallet.Score)
		}
	}
}

func TestRescoreWalletFetchFailureRejects(t *testing.T) {
	repo := newStubRepo()
	repo.records["privy-1"] = &model.ScoreRecord{
		PrivyID: "privy-1",
		Badges:  scoring.BadgeSet{},
		Wallets: []model.WalletScore{{WalletAddress: "0xold", Score: 15}},
	}

	svc := newTestService(repo, &stubTwitter{}, &stubWallet{err: errors.New("upstream down")}, &stubTelegram{})

	_, err := svc.RescoreWallet(context.Background(), dto.WalletScoreRequest{
		PrivyID:       "privy-1",
		WalletAddress: "0xnew",
	})
	if !errors.Is(err, apperror.ErrBadRequest) {
		t.Errorf("err = %v, want ErrBadRequest", err)
	}
	if repo.records["privy-1"].Wallets[0].Score != 15 {
		t.Error("a failed rescore must leave stored wallet scores untouched")
	}
}
