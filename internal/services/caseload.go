package services

import (
	"context"

	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/store"
)

// CaseloadService projects participant profiles for supporters.
type CaseloadService struct {
	store store.Store
}

func NewCaseloadService(s store.Store) *CaseloadService { return &CaseloadService{store: s} }

// Caseload lists all participant profiles. Recomputed on every request; there
// is no freshness guarantee or cache.
func (s *CaseloadService) Caseload(ctx context.Context) ([]model.CaseloadParticipant, error) {
	rows, err := s.store.Profiles().ListByRole(ctx, model.RoleParticipant)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.CaseloadParticipant{}
	}
	return rows, nil
}
