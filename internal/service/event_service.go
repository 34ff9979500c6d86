package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fomoscore/backend/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const leaderboardKey = "leaderboard:total_score"

// ScoreEvent is published whenever a record's score changes. Subscribers
// stream it to connected websocket clients.
type ScoreEvent struct {
	PrivyID    string    `json:"privy_id"`
	Username   string    `json:"username,omitempty"`
	TotalScore float64   `json:"total_score"`
	Title      string    `json:"title"`
	Badges     []string  `json:"badges"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EventService ties score changes to the redis leaderboard and the pub/sub
// channel feeding live clients. Every method degrades to a no-op when redis
// is unavailable.
type EventService interface {
	PublishScoreChange(ctx context.Context, record *model.ScoreRecord)
	LeaderboardRank(ctx context.Context, privyID string) (int64, error)
}

type eventService struct {
	redisClient *redis.Client
	log         *zap.SugaredLogger
}

func NewEventService(redisClient *redis.Client, log *zap.SugaredLogger) EventService {
	return &eventService{redisClient: redisClient, log: log}
}

func (s *eventService) PublishScoreChange(ctx context.Context, record *model.ScoreRecord) {
	if s.redisClient == nil {
		return
	}

	if err := s.redisClient.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  record.TotalScore,
		Member: record.PrivyID,
	}).Err(); err != nil {
		s.log.Warnw("failed to update leaderboard", "privy_id", record.PrivyID, "error", err)
	}

	event := ScoreEvent{
		PrivyID:    record.PrivyID,
		TotalScore: record.TotalScore,
		Title:      record.Title,
		Badges:     record.Badges.Names(),
		UpdatedAt:  record.UpdatedAt,
	}
	if record.Username != nil {
		event.Username = *record.Username
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	channel := fmt.Sprintf("score_updates:%s", record.PrivyID)
	s.redisClient.Publish(ctx, channel, payload)
	s.redisClient.Publish(ctx, "score_updates:all", payload)
}

// LeaderboardRank returns the 1-based rank by total score, or 0 when the
// user is not ranked yet.
func (s *eventService) LeaderboardRank(ctx context.Context, privyID string) (int64, error) {
	if s.redisClient == nil {
		return 0, nil
	}

	rank, err := s.redisClient.ZRevRank(ctx, leaderboardKey, privyID).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rank + 1, nil
}
