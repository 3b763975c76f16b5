package model

import (
	"encoding/json"
	"time"
)

// Known profile roles.
const (
	RoleParticipant = "participant"
	RoleSupporter   = "supporter"
)

// Identity is the authenticated caller resolved from a verified bearer token.
// It lives for a single request and is never persisted locally.
type Identity struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

// Profile is the application-level record associated with an auth subject.
type Profile struct {
	ID       string `json:"id"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// Exercise is a single activity inside a lesson.
type Exercise struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// Lesson groups exercises inside a module.
type Lesson struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
}

// Module is a top-level unit of the programme.
type Module struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Program is the full curriculum tree, fetched whole and read-only.
type Program struct {
	Modules []Module `json:"modules"`
}

// ExerciseRef is the embedded exercise projection on a response row.
type ExerciseRef struct {
	Title string `json:"title"`
}

// ExerciseResponse is one append-only submission for (user, exercise).
type ExerciseResponse struct {
	ID           int64           `json:"id"`
	UserID       string          `json:"user_id"`
	ExerciseID   int64           `json:"exercise_id"`
	ResponseData json.RawMessage `json:"response_data"`
	CreatedAt    time.Time       `json:"created_at"`
	Exercise     *ExerciseRef    `json:"exercises,omitempty"`
}

// Assessment is a read-only questionnaire definition.
type Assessment struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Questions json.RawMessage `json:"questions"`
}

// AssessmentRef is the embedded assessment projection on a submission row.
type AssessmentRef struct {
	Name string `json:"name"`
}

// AssessmentResult is an immutable scored submission.
// Score is always the sum of the submitted answers.
type AssessmentResult struct {
	ID           int64          `json:"id"`
	AssessmentID int64          `json:"assessment_id"`
	Score        int            `json:"score"`
	Answers      []int          `json:"answers,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	Assessment   *AssessmentRef `json:"assessments,omitempty"`
}

// Progress aggregates a user's completion ratio and assessment history.
type Progress struct {
	CompletionPercentage float64                       `json:"completion_percentage"`
	AssessmentTrends     map[string][]AssessmentResult `json:"assessment_trends"`
}

// CaseloadParticipant is the supporter-facing projection of a participant profile.
type CaseloadParticipant struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// Message is a direct message between two identities.
type Message struct {
	ID          int64      `json:"id,omitempty"`
	SenderID    string     `json:"sender_id"`
	RecipientID string     `json:"recipient_id"`
	Content     string     `json:"content"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// AssetRecord is a row of the asset catalog as stored remotely.
type AssetRecord struct {
	Name        string `json:"name"`
	StoragePath string `json:"storage_path"`
}

// Asset is a catalog entry with a time-limited signed URL.
type Asset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Timeline item kinds.
const (
	TimelineExerciseResponse     = "exercise_response"
	TimelineAssessmentSubmission = "assessment_submission"
)

// TimelineItem is one event in a user's merged activity timeline.
type TimelineItem struct {
	Kind      string          `json:"kind"`
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	CreatedAt time.Time       `json:"created_at"`
	Detail    json.RawMessage `json:"detail,omitempty"`
}
