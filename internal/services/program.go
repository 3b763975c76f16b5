package services

import (
	"context"
	"encoding/json"

	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/store"
)

// ProgramService reads the curriculum tree and records exercise responses.
type ProgramService struct {
	store store.Store
}

func NewProgramService(s store.Store) *ProgramService { return &ProgramService{store: s} }

// Program fetches the whole module/lesson/exercise tree. Ordering is whatever
// the external store returns.
func (s *ProgramService) Program(ctx context.Context) (*model.Program, error) {
	mods, err := s.store.Curriculum().ProgramTree(ctx)
	if err != nil {
		return nil, err
	}
	if mods == nil {
		mods = []model.Module{}
	}
	return &model.Program{Modules: mods}, nil
}

// SaveResponse appends one response row. Duplicate submissions are allowed
// and produce duplicate rows.
func (s *ProgramService) SaveResponse(ctx context.Context, userID string, exerciseID int64, data json.RawMessage) ([]model.ExerciseResponse, error) {
	return s.store.Responses().Insert(ctx, userID, exerciseID, data)
}
