package services

import (
	"context"
	"fmt"

	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/store"
)

// ProgressService aggregates a user's completion ratio and assessment trends.
type ProgressService struct {
	store store.Store
}

func NewProgressService(s store.Store) *ProgressService { return &ProgressService{store: s} }

// Progress computes the completion percentage and buckets the user's
// assessment submissions by assessment name. A programme with zero exercises
// yields 0%, not an error. Within each bucket the delegated order is kept.
func (s *ProgressService) Progress(ctx context.Context, userID string) (*model.Progress, error) {
	total, err := s.store.Curriculum().ExerciseCount(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.store.Responses().CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	pct := 0.0
	if total > 0 {
		pct = float64(completed) / float64(total) * 100
	}

	subs, err := s.store.Submissions().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	trends := make(map[string][]model.AssessmentResult)
	for _, sub := range subs {
		if sub.Assessment == nil || sub.Assessment.Name == "" {
			return nil, fmt.Errorf("submission %d carries no assessment name", sub.ID)
		}
		name := sub.Assessment.Name
		item := sub
		item.Assessment = nil
		trends[name] = append(trends[name], item)
	}

	return &model.Progress{CompletionPercentage: pct, AssessmentTrends: trends}, nil
}
