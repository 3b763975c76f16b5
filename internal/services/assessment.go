package services

import (
	"context"

	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/store"
)

// AssessmentService reads the assessment catalog and records scored submissions.
type AssessmentService struct {
	store store.Store
}

func NewAssessmentService(s store.Store) *AssessmentService { return &AssessmentService{store: s} }

// Score is the sum of the submitted answer vector. An empty vector scores 0.
// This is the one piece of business logic computed locally rather than
// delegated.
func Score(answers []int) int {
	total := 0
	for _, a := range answers {
		total += a
	}
	return total
}

func (s *AssessmentService) List(ctx context.Context) ([]model.Assessment, error) {
	rows, err := s.store.Assessments().List(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.Assessment{}
	}
	return rows, nil
}

// Submit scores the answers locally and inserts one immutable submission row.
func (s *AssessmentService) Submit(ctx context.Context, userID string, assessmentID int64, answers []int) (*model.AssessmentResult, error) {
	return s.store.Submissions().Insert(ctx, userID, assessmentID, answers, Score(answers))
}
