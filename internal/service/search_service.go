package service

import (
	"encoding/json"
	"html"
	"strings"

	"github.com/fomoscore/backend/internal/model"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const scoreIndexName = "scores"

type SearchService interface {
	IndexRecord(record *model.ScoreRecord) error
	SearchRecords(query string, limit int) ([]map[string]any, error)
}

type searchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
	log       *zap.SugaredLogger
}

func NewSearchService(client meilisearch.ServiceManager, log *zap.SugaredLogger) SearchService {
	s := &searchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
		log:       log,
	}
	s.initIndexes()
	return s
}

func (s *searchService) initIndexes() {
	filterable := []string{"title", "badges"}
	filterableInterface := make([]any, len(filterable))
	for i, v := range filterable {
		filterableInterface[i] = v
	}
	_, err := s.client.Index(scoreIndexName).UpdateFilterableAttributes(&filterableInterface)
	if err != nil {
		s.log.Warnw("failed to update scores filterable attributes", "error", err)
	}

	sortable := []string{"total_score", "updated_at"}
	_, err = s.client.Index(scoreIndexName).UpdateSortableAttributes(&sortable)
	if err != nil {
		s.log.Warnw("failed to update scores sortable attributes", "error", err)
	}
}

type meiliScoreDoc struct {
	ID         string   `json:"id"`
	PrivyID    string   `json:"privy_id"`
	Username   string   `json:"username"`
	Title      string   `json:"title"`
	Badges     []string `json:"badges"`
	TotalScore float64  `json:"total_score"`
	UpdatedAt  int64    `json:"updated_at"`
}

// cleanForIndex strips any markup from user-supplied identity fields before
// they reach the index.
func (s *searchService) cleanForIndex(value string) string {
	sanitized := s.sanitizer.Sanitize(value)
	clean := html.UnescapeString(sanitized)
	return strings.Join(strings.Fields(clean), " ")
}

func (s *searchService) IndexRecord(record *model.ScoreRecord) error {
	username := ""
	if record.Username != nil {
		username = s.cleanForIndex(*record.Username)
	}

	doc := meiliScoreDoc{
		ID:         record.ID.String(),
		PrivyID:    record.PrivyID,
		Username:   username,
		Title:      record.Title,
		Badges:     record.Badges.Names(),
		TotalScore: record.TotalScore,
		UpdatedAt:  record.UpdatedAt.Unix(),
	}

	task, err := s.client.Index(scoreIndexName).AddDocuments([]meiliScoreDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	s.log.Debugw("indexed score record", "record_id", record.ID, "task_id", task.TaskUID)
	return nil
}

func (s *searchService) SearchRecords(query string, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = 20
	}
	resp, err := s.client.Index(scoreIndexName).Search(query, &meilisearch.SearchRequest{
		Limit: int64(limit),
		Sort:  []string{"total_score:desc"},
	})
	if err != nil {
		return nil, err
	}

	hits := make([]map[string]any, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		doc := make(map[string]any, len(hit))
		for field, raw := range hit {
			var value any
			if err := json.Unmarshal(raw, &value); err != nil {
				s.log.Warnw("skipping undecodable search hit field", "field", field, "error", err)
				continue
			}
			doc[field] = value
		}
		hits = append(hits, doc)
	}
	return hits, nil
}

func strPtr(s string) *string {
	return &s
}
