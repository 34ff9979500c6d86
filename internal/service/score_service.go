package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fomoscore/backend/internal/dto"
	"github.com/fomoscore/backend/internal/fetcher"
	"github.com/fomoscore/backend/internal/model"
	"github.com/fomoscore/backend/internal/payload"
	"github.com/fomoscore/backend/internal/repository"
	"github.com/fomoscore/backend/internal/scoring"
	"github.com/fomoscore/backend/pkg/apperror"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const actionCalculateScore = "calculate_score"

type ScoreService interface {
	CalculateScore(ctx context.Context, req dto.CalculateScoreRequest) (*dto.ScoreResponse, error)
	GetScore(ctx context.Context, privyID string) (*dto.ScoreResponse, error)
	RescoreWallet(ctx context.Context, req dto.WalletScoreRequest) (*dto.ScoreResponse, error)
	Leaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error)
}

type scoreService struct {
	repo     repository.ScoreRepository
	twitter  fetcher.TwitterSource
	wallet   fetcher.WalletSource
	telegram fetcher.TelegramSource

	events      EventService
	search      SearchService
	badgeArt    BadgeAssetService
	redisClient *redis.Client

	fetchTimeout time.Duration
	rateLimit    time.Duration
	log          *zap.SugaredLogger
}

func NewScoreService(
	repo repository.ScoreRepository,
	twitter fetcher.TwitterSource,
	wallet fetcher.WalletSource,
	telegram fetcher.TelegramSource,
	events EventService,
	search SearchService,
	badgeArt BadgeAssetService,
	redisClient *redis.Client,
	fetchTimeout time.Duration,
	rateLimit time.Duration,
	log *zap.SugaredLogger,
) ScoreService {
	return &scoreService{
		repo:         repo,
		twitter:      twitter,
		wallet:       wallet,
		telegram:     telegram,
		events:       events,
		search:       search,
		badgeArt:     badgeArt,
		redisClient:  redisClient,
		fetchTimeout: fetchTimeout,
		rateLimit:    rateLimit,
		log:          log,
	}
}

// fetchResult holds the outcome of the three concurrent source fetches. A nil
// field means the source was not requested or its fetch failed.
type fetchResult struct {
	twitterRaw  map[string]any
	walletRaw   map[string]any
	telegramRaw *fetcher.TelegramData
}

func (s *scoreService) CalculateScore(ctx context.Context, req dto.CalculateScoreRequest) (*dto.ScoreResponse, error) {
	allowed, err := CheckAndSetRateLimit(ctx, s.redisClient, req.PrivyID, actionCalculateScore, s.rateLimit)
	if err != nil {
		s.log.Warnw("rate limit check failed, allowing request", "privy_id", req.PrivyID, "error", err)
	} else if !allowed {
		return nil, apperror.ErrRateLimitExceeded
	}

	res := s.fetchSources(ctx, req)

	in := scoring.Input{Now: time.Now()}
	if res.twitterRaw != nil {
		user := payload.ProjectTwitter(res.twitterRaw)
		in.Twitter = &user
	}
	if res.walletRaw != nil {
		wallet := payload.ProjectWallet(res.walletRaw)
		in.Wallet = &wallet
	}
	if res.telegramRaw != nil {
		in.Groups = payload.ProjectTelegramGroups(res.telegramRaw.GroupItems)
		in.Messages = payload.ProjectTelegramMessages(res.telegramRaw.MessageItems)
		in.TelegramPresent = true
	}

	eval := scoring.Evaluate(in)

	update := repository.ScoreUpdate{
		Title:  eval.Title,
		Badges: eval.Badges,
	}
	if req.Username != "" {
		update.Username = &req.Username
	}
	if req.Email != "" {
		update.Email = &req.Email
	}
	if in.Twitter != nil {
		update.SocialScore = &eval.Scores.Social
	}
	if in.Wallet != nil {
		update.CryptoScore = &eval.Scores.Crypto
		update.NFTScore = &eval.Scores.NFT
		update.WalletAddress = req.Address
		update.WalletScore = eval.Scores.Crypto
	}
	if in.TelegramPresent {
		update.CommunityScore = &eval.Scores.Community
		update.TelegramScore = &eval.Scores.Telegram
	}

	record, err := s.repo.Upsert(req.PrivyID, update)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	// Side effects after the record is durable. All best effort.
	s.events.PublishScoreChange(ctx, record)
	if err := s.search.IndexRecord(record); err != nil {
		s.log.Warnw("failed to index score record", "privy_id", record.PrivyID, "error", err)
	}
	badgeArt := s.badgeArt.UploadBadgeArt(ctx, record.PrivyID, eval.Badges)

	resp := s.toResponse(ctx, record)
	resp.BadgeArt = badgeArt
	return resp, nil
}

// fetchSources runs the requested source fetches concurrently, each under its
// own timeout. A failed fetch logs and leaves its slot nil so the remaining
// categories still score.
func (s *scoreService) fetchSources(ctx context.Context, req dto.CalculateScoreRequest) fetchResult {
	var (
		res fetchResult
		wg  sync.WaitGroup
	)

	if req.Username != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()
			raw, err := s.twitter.UserDetails(fetchCtx, req.Username)
			if err != nil {
				s.log.Warnw("twitter fetch failed", "username", req.Username, "error", err)
				return
			}
			res.twitterRaw = raw
		}()
	}

	if req.Address != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()
			raw, err := s.wallet.WalletDetails(fetchCtx, req.Address)
			if err != nil {
				s.log.Warnw("wallet fetch failed", "address", req.Address, "error", err)
				return
			}
			res.walletRaw = raw
		}()
	}

	if req.UserDID != "" && req.AuthToken != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()
			data, err := s.telegram.TelegramData(fetchCtx, req.UserDID, req.AuthToken)
			if err != nil {
				s.log.Warnw("telegram fetch failed", "did", req.UserDID, "error", err)
				return
			}
			res.telegramRaw = &data
		}()
	}

	wg.Wait()
	return res
}

func (s *scoreService) GetScore(ctx context.Context, privyID string) (*dto.ScoreResponse, error) {
	record, err := s.repo.FindByPrivyID(privyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, record), nil
}

// RescoreWallet refetches every linked wallet plus the supplied address and
// folds the combined on-chain result into the record's crypto and nft
// categories. Stored per-wallet scores are refreshed in the same pass.
func (s *scoreService) RescoreWallet(ctx context.Context, req dto.WalletScoreRequest) (*dto.ScoreResponse, error) {
	record, err := s.repo.FindByPrivyID(req.PrivyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	addresses := make([]string, 0, len(record.Wallets)+1)
	seen := make(map[string]bool, len(record.Wallets)+1)
	for _, wallet := range record.Wallets {
		if !seen[wallet.WalletAddress] {
			seen[wallet.WalletAddress] = true
			addresses = append(addresses, wallet.WalletAddress)
		}
	}
	if !seen[req.WalletAddress] {
		addresses = append(addresses, req.WalletAddress)
	}

	snapshots, err := s.fetchWallets(ctx, addresses)
	if err != nil {
		return nil, fmt.Errorf("%w: wallet data unavailable", apperror.ErrBadRequest)
	}

	var rawCrypto, rawNFT float64
	entries := make([]repository.WalletEntry, 0, len(addresses))
	for _, address := range addresses {
		wallet := snapshots[address]
		crypto := scoring.CryptoScore(wallet)
		rawCrypto += crypto
		rawNFT += scoring.NFTScore(wallet)

		clamped, _ := scoring.Aggregate(scoring.SubScores{Crypto: crypto})
		entries = append(entries, repository.WalletEntry{Address: address, Score: clamped.Crypto})
	}
	combined, _ := scoring.Aggregate(scoring.SubScores{Crypto: rawCrypto, NFT: rawNFT})

	record, err = s.repo.RefreshWalletScores(req.PrivyID, entries, combined.Crypto, combined.NFT)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	s.events.PublishScoreChange(ctx, record)
	return s.toResponse(ctx, record), nil
}

// fetchWallets fetches every address concurrently under per-fetch timeouts.
// Unlike the calculate path a single failed wallet fails the whole rescore;
// a partial refresh would silently drop that wallet's contribution.
func (s *scoreService) fetchWallets(ctx context.Context, addresses []string) (map[string]payload.Wallet, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	snapshots := make(map[string]payload.Wallet, len(addresses))

	for _, address := range addresses {
		wg.Add(1)
		go func(address string) {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()
			raw, err := s.wallet.WalletDetails(fetchCtx, address)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.log.Warnw("wallet fetch failed", "address", address, "error", err)
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			snapshots[address] = payload.ProjectWallet(raw)
		}(address)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return snapshots, nil
}

func (s *scoreService) Leaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	records, err := s.repo.TopByTotal(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(records))
	for i, record := range records {
		entry := dto.LeaderboardEntry{
			PrivyID:    record.PrivyID,
			TotalScore: record.TotalScore,
			Title:      record.Title,
			Rank:       i + 1,
		}
		if record.Username != nil {
			entry.Username = *record.Username
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *scoreService) toResponse(ctx context.Context, record *model.ScoreRecord) *dto.ScoreResponse {
	resp := &dto.ScoreResponse{
		PrivyID:        record.PrivyID,
		SocialScore:    record.SocialScore,
		CryptoScore:    record.CryptoScore,
		NFTScore:       record.NFTScore,
		CommunityScore: record.CommunityScore,
		TelegramScore:  record.TelegramScore,
		TotalScore:     record.TotalScore,
		Title:          record.Title,
		Badges:         record.Badges,
		UpdatedAt:      record.UpdatedAt.Format(time.RFC3339),
	}
	if record.Username != nil {
		resp.Username = *record.Username
	}

	resp.Wallets = make([]dto.WalletResponse, 0, len(record.Wallets))
	for _, w := range record.Wallets {
		resp.Wallets = append(resp.Wallets, dto.WalletResponse{
			WalletAddress: w.WalletAddress,
			Score:         w.Score,
		})
	}

	rank, err := s.events.LeaderboardRank(ctx, record.PrivyID)
	if err != nil {
		s.log.Debugw("failed to read leaderboard rank", "privy_id", record.PrivyID, "error", err)
	} else {
		resp.Rank = rank
	}
	return resp
}
