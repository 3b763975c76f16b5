// Package store defines the table/RPC surface of the external data service.
// The service owns no durable state of its own; every entity here is persisted
// by the remote provider and reached through one of these interfaces.
package store

import (
	"context"
	"encoding/json"

	"github.com/stillpoint-health/backend/internal/model"
)

// Store exposes the delegated operations required by services.
// Implementations live under internal/store/<provider>/ (e.g. supabase).
type Store interface {
	Profiles() Profiles
	Curriculum() Curriculum
	Responses() Responses
	Assessments() Assessments
	Submissions() Submissions
	Messages() Messages
	Assets() Assets
}

// Profiles reads and writes application-level profile records.
type Profiles interface {
	// Insert creates a profile row keyed by the auth subject id.
	Insert(ctx context.Context, p *model.Profile) error
	// GetByID returns the first profile matching the subject id, or
	// model.ErrNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	// ListByRole projects all profiles with the given role.
	ListByRole(ctx context.Context, role string) ([]model.CaseloadParticipant, error)
}

// Curriculum reads the programme tree. Strictly read-only.
type Curriculum interface {
	// ProgramTree fetches all modules with nested lessons and exercises.
	ProgramTree(ctx context.Context) ([]model.Module, error)
	// ExerciseCount returns the total number of exercise rows.
	ExerciseCount(ctx context.Context) (int, error)
}

// Responses stores exercise submissions. Append-only: a resubmission creates
// a new row, never an update.
type Responses interface {
	Insert(ctx context.Context, userID string, exerciseID int64, data json.RawMessage) ([]model.ExerciseResponse, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	// ListByUser returns the user's responses with the exercise title joined in.
	ListByUser(ctx context.Context, userID string) ([]model.ExerciseResponse, error)
}

// Assessments reads the assessment catalog.
type Assessments interface {
	List(ctx context.Context) ([]model.Assessment, error)
}

// Submissions stores scored assessment submissions.
type Submissions interface {
	Insert(ctx context.Context, userID string, assessmentID int64, answers []int, score int) (*model.AssessmentResult, error)
	// ListByUser returns the user's submissions with the assessment name joined in.
	ListByUser(ctx context.Context, userID string) ([]model.AssessmentResult, error)
}

// Messages stores direct messages and resolves threads via a named RPC.
type Messages interface {
	Insert(ctx context.Context, m *model.Message) (*model.Message, error)
	Thread(ctx context.Context, userA, userB string) ([]model.Message, error)
}

// Assets reads the asset catalog.
type Assets interface {
	List(ctx context.Context) ([]model.AssetRecord, error)
}
