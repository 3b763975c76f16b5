package services

import (
	"context"
	"encoding/json"

	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/store"
)

// --- Fakes ---

// fakeStore wires pluggable sub-fakes; unset collections panic on use so a
// test only touching submissions cannot silently depend on the curriculum.
type fakeStore struct {
	profiles    store.Profiles
	curriculum  store.Curriculum
	responses   store.Responses
	assessments store.Assessments
	submissions store.Submissions
	messages    store.Messages
	assets      store.Assets
}

func (f *fakeStore) Profiles() store.Profiles {
	if f.profiles == nil {
		panic("unused")
	}
	return f.profiles
}

func (f *fakeStore) Curriculum() store.Curriculum {
	if f.curriculum == nil {
		panic("unused")
	}
	return f.curriculum
}

func (f *fakeStore) Responses() store.Responses {
	if f.responses == nil {
		panic("unused")
	}
	return f.responses
}

func (f *fakeStore) Assessments() store.Assessments {
	if f.assessments == nil {
		panic("unused")
	}
	return f.assessments
}

func (f *fakeStore) Submissions() store.Submissions {
	if f.submissions == nil {
		panic("unused")
	}
	return f.submissions
}

func (f *fakeStore) Messages() store.Messages {
	if f.messages == nil {
		panic("unused")
	}
	return f.messages
}

func (f *fakeStore) Assets() store.Assets {
	if f.assets == nil {
		panic("unused")
	}
	return f.assets
}

type fakeCurriculum struct {
	modules       []model.Module
	exerciseCount int
	countErr      error
}

func (f *fakeCurriculum) ProgramTree(context.Context) ([]model.Module, error) {
	return f.modules, nil
}
func (f *fakeCurriculum) ExerciseCount(context.Context) (int, error) {
	return f.exerciseCount, f.countErr
}

type fakeResponses struct {
	rows      []model.ExerciseResponse
	count     int
	countErr  error
	listErr   error
	inserted  []insertedResponse
	insertErr error
}

type insertedResponse struct {
	userID     string
	exerciseID int64
	data       json.RawMessage
}

func (f *fakeResponses) Insert(_ context.Context, userID string, exerciseID int64, data json.RawMessage) ([]model.ExerciseResponse, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, insertedResponse{userID, exerciseID, data})
	return f.rows, nil
}
func (f *fakeResponses) CountByUser(context.Context, string) (int, error) {
	return f.count, f.countErr
}
func (f *fakeResponses) ListByUser(context.Context, string) ([]model.ExerciseResponse, error) {
	return f.rows, f.listErr
}

type fakeSubmissions struct {
	rows     []model.AssessmentResult
	listErr  error
	inserted []insertedSubmission
}

type insertedSubmission struct {
	userID       string
	assessmentID int64
	answers      []int
	score        int
}

func (f *fakeSubmissions) Insert(_ context.Context, userID string, assessmentID int64, answers []int, score int) (*model.AssessmentResult, error) {
	f.inserted = append(f.inserted, insertedSubmission{userID, assessmentID, answers, score})
	return &model.AssessmentResult{ID: int64(len(f.inserted)), AssessmentID: assessmentID, Score: score, Answers: answers}, nil
}
func (f *fakeSubmissions) ListByUser(context.Context, string) ([]model.AssessmentResult, error) {
	return f.rows, f.listErr
}

type fakeMessages struct {
	inserted []*model.Message
	thread   []model.Message
	threadAB [2]string
}

func (f *fakeMessages) Insert(_ context.Context, m *model.Message) (*model.Message, error) {
	f.inserted = append(f.inserted, m)
	out := *m
	out.ID = int64(len(f.inserted))
	return &out, nil
}
func (f *fakeMessages) Thread(_ context.Context, a, b string) ([]model.Message, error) {
	f.threadAB = [2]string{a, b}
	return f.thread, nil
}

type fakeAssets struct {
	records []model.AssetRecord
}

func (f *fakeAssets) List(context.Context) ([]model.AssetRecord, error) {
	return f.records, nil
}
