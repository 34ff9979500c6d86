package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fomoscore/backend/internal/dto"
	"github.com/fomoscore/backend/internal/fetcher"
	"github.com/fomoscore/backend/internal/payload"
	"github.com/fomoscore/backend/internal/scoring"
	"github.com/fomoscore/backend/pkg/apperror"
	"go.uber.org/zap"
)

// EngagementService runs the telegram-only engagement pipeline: banded
// activity scoring, keyword bonus and the FOMO scale. Separate from the
// composite score on purpose; nothing here touches the score store.
type EngagementService interface {
	TelegramEngagement(ctx context.Context, req dto.TelegramEngagementRequest) (*dto.TelegramEngagementResponse, error)
}

type engagementService struct {
	telegram     fetcher.TelegramSource
	fetchTimeout time.Duration
	log          *zap.SugaredLogger
}

func NewEngagementService(telegram fetcher.TelegramSource, fetchTimeout time.Duration, log *zap.SugaredLogger) EngagementService {
	return &engagementService{telegram: telegram, fetchTimeout: fetchTimeout, log: log}
}

func (s *engagementService) TelegramEngagement(ctx context.Context, req dto.TelegramEngagementRequest) (*dto.TelegramEngagementResponse, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	data, err := s.telegram.TelegramData(fetchCtx, req.UserDID, req.AuthToken)
	if err != nil {
		return nil, fmt.Errorf("%w: telegram data unavailable", apperror.ErrBadRequest)
	}

	groups := payload.ProjectTelegramGroups(data.GroupItems)
	messages := payload.ProjectTelegramMessages(data.MessageItems)

	matches := scoring.ScanTelegram(groups, messages)
	raw := scoring.EngagementScore(len(groups), len(messages), matches)
	fomo := scoring.FOMOScale(len(groups), len(messages), matches)
	badges := scoring.EngagementBadges(raw, len(groups), matches)
	if badges == nil {
		badges = []string{}
	}

	s.log.Infow("telegram engagement computed",
		"did", req.UserDID,
		"groups", len(groups),
		"messages", len(messages),
		"raw", raw,
		"fomo", fomo,
	)

	return &dto.TelegramEngagementResponse{
		GroupCount:     len(groups),
		MessageCount:   len(messages),
		EngagementRaw:  raw,
		EngagementFOMO: fomo,
		Badges:         badges,
		Keywords:       *matches,
	}, nil
}
