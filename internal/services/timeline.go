package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/store"
)

// TimelineService merges a user's exercise responses and assessment
// submissions into one reverse-chronological list.
type TimelineService struct {
	store store.Store
}

func NewTimelineService(s store.Store) *TimelineService { return &TimelineService{store: s} }

type submissionDetail struct {
	Score   int   `json:"score"`
	Answers []int `json:"answers"`
}

// Timeline fetches both event lists fully, then sorts descending by
// created_at. The sort is stable: at equal timestamps responses keep their
// place ahead of submissions.
func (s *TimelineService) Timeline(ctx context.Context, userID string) ([]model.TimelineItem, error) {
	responses, err := s.store.Responses().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	submissions, err := s.store.Submissions().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]model.TimelineItem, 0, len(responses)+len(submissions))
	for _, r := range responses {
		title := ""
		if r.Exercise != nil {
			title = r.Exercise.Title
		}
		items = append(items, model.TimelineItem{
			Kind:      model.TimelineExerciseResponse,
			ID:        r.ID,
			Title:     title,
			CreatedAt: r.CreatedAt,
			Detail:    r.ResponseData,
		})
	}
	for _, sub := range submissions {
		title := ""
		if sub.Assessment != nil {
			title = sub.Assessment.Name
		}
		detail, err := json.Marshal(submissionDetail{Score: sub.Score, Answers: sub.Answers})
		if err != nil {
			return nil, fmt.Errorf("encode submission %d: %w", sub.ID, err)
		}
		items = append(items, model.TimelineItem{
			Kind:      model.TimelineAssessmentSubmission,
			ID:        sub.ID,
			Title:     title,
			CreatedAt: sub.CreatedAt,
			Detail:    detail,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}
