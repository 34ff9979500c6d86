package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fomoscore/backend/internal/scoring"
	"github.com/fomoscore/backend/pkg/storage"
	"go.uber.org/zap"
)

// Level colors for the badge artwork, flat-square style.
var levelColors = map[scoring.Level]string{
	scoring.LevelSilver:   "#C0C0C0",
	scoring.LevelGold:     "#FFD700",
	scoring.LevelPlatinum: "#E5E4E2",
}

const badgeLabelColor = "#333"

// BadgeAssetService renders SVG artwork for earned badges and stores it so
// the frontend can embed stable image URLs.
type BadgeAssetService interface {
	UploadBadgeArt(ctx context.Context, privyID string, badges scoring.BadgeSet) map[string]string
}

type badgeAssetService struct {
	store  storage.AssetStorage
	folder string
	log    *zap.SugaredLogger
}

func NewBadgeAssetService(store storage.AssetStorage, folder string, log *zap.SugaredLogger) BadgeAssetService {
	return &badgeAssetService{store: store, folder: folder, log: log}
}

// UploadBadgeArt renders and uploads one SVG per earned badge. Uploads are
// best effort: a failed upload is logged and skipped, never fails scoring.
func (s *badgeAssetService) UploadBadgeArt(ctx context.Context, privyID string, badges scoring.BadgeSet) map[string]string {
	urls := make(map[string]string, len(badges))
	if s.store == nil {
		return urls
	}

	for name, award := range badges {
		svg := renderBadgeSVG(name, string(award.Level), levelColors[award.Level])
		fileName := fmt.Sprintf("%s_%s.svg", privyID, slugify(name))

		url, err := s.store.UploadAsset(ctx, strings.NewReader(svg), s.folder, fileName)
		if err != nil {
			s.log.Warnw("failed to upload badge artwork", "badge", name, "error", err)
			continue
		}
		urls[name] = url
	}
	return urls
}

// renderBadgeSVG produces a flat-square two-segment badge. Segment widths use
// a fixed per-character estimate, which is close enough for short labels.
func renderBadgeSVG(label, message, color string) string {
	if color == "" {
		color = "#FF4500"
	}
	labelWidth := 10 + 7*len(label)
	messageWidth := 10 + 7*len(message)
	total := labelWidth + messageWidth

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="20" role="img" aria-label="%s: %s">`+
		`<g shape-rendering="crispEdges">`+
		`<rect width="%d" height="20" fill="%s"/>`+
		`<rect x="%d" width="%d" height="20" fill="%s"/>`+
		`</g>`+
		`<g fill="#fff" text-anchor="middle" font-family="Verdana,Geneva,DejaVu Sans,sans-serif" font-size="11">`+
		`<text x="%d" y="14">%s</text>`+
		`<text x="%d" y="14">%s</text>`+
		`</g></svg>`,
		total, label, message,
		labelWidth, badgeLabelColor,
		labelWidth, messageWidth, color,
		labelWidth/2, label,
		labelWidth+messageWidth/2, message)
}

func slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
