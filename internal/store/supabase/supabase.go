// Package supabase implements store.Store against the Supabase PostgREST API.
package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/store"
)

// Store is a PostgREST-backed implementation of store.Store. Every operation
// is a single HTTP call; there is no retry and no local caching.
type Store struct {
	rest *resty.Client
}

// New constructs a Store for the given Supabase project URL and API key.
func New(baseURL, apiKey string) *Store {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/") + "/rest/v1").
		SetHeader("apikey", apiKey).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	return &Store{rest: c}
}

func (s *Store) Profiles() store.Profiles       { return &profiles{s} }
func (s *Store) Curriculum() store.Curriculum   { return &curriculum{s} }
func (s *Store) Responses() store.Responses     { return &responses{s} }
func (s *Store) Assessments() store.Assessments { return &assessments{s} }
func (s *Store) Submissions() store.Submissions { return &submissions{s} }
func (s *Store) Messages() store.Messages       { return &messages{s} }
func (s *Store) Assets() store.Assets           { return &assets{s} }

// HealthPing implements health.Pinger with a minimal catalog read.
func (s *Store) HealthPing(ctx context.Context) error {
	return s.get(ctx, "assessments", map[string]string{"select": "id", "limit": "1"}, &[]model.Assessment{})
}

// --- PostgREST plumbing ---

func (s *Store) get(ctx context.Context, table string, params map[string]string, out interface{}) error {
	resp, err := s.rest.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(out).
		Get("/" + table)
	if err != nil {
		return fmt.Errorf("supabase: select %s: %w", table, err)
	}
	if resp.IsError() {
		return restStatusError("select", table, resp)
	}
	return nil
}

func (s *Store) insert(ctx context.Context, table string, body, out interface{}) error {
	req := s.rest.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(body)
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Post("/" + table)
	if err != nil {
		return fmt.Errorf("supabase: insert %s: %w", table, err)
	}
	if resp.IsError() {
		return restStatusError("insert", table, resp)
	}
	return nil
}

// count issues a HEAD request with Prefer: count=exact and parses the total
// from the Content-Range header ("0-24/3573" or "*/0").
func (s *Store) count(ctx context.Context, table string, params map[string]string) (int, error) {
	resp, err := s.rest.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetHeader("Prefer", "count=exact").
		Head("/" + table)
	if err != nil {
		return 0, fmt.Errorf("supabase: count %s: %w", table, err)
	}
	if resp.IsError() {
		return 0, restStatusError("count", table, resp)
	}
	n, err := parseContentRangeTotal(resp.Header().Get("Content-Range"))
	if err != nil {
		return 0, fmt.Errorf("supabase: count %s: %w", table, err)
	}
	return n, nil
}

func (s *Store) rpc(ctx context.Context, fn string, args, out interface{}) error {
	req := s.rest.R().SetContext(ctx).SetBody(args)
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Post("/rpc/" + fn)
	if err != nil {
		return fmt.Errorf("supabase: rpc %s: %w", fn, err)
	}
	if resp.IsError() {
		return restStatusError("rpc", fn, resp)
	}
	return nil
}

// restStatusError reports a failed delegated call. Absent rows are not an
// error at this layer (PostgREST returns empty arrays); a non-2xx status means
// the delegation itself failed and maps to an internal error upstream.
func restStatusError(op, target string, resp *resty.Response) error {
	return fmt.Errorf("supabase: %s %s: status %d: %s", op, target, resp.StatusCode(), strings.TrimSpace(resp.String()))
}

func parseContentRangeTotal(v string) (int, error) {
	idx := strings.LastIndex(v, "/")
	if idx < 0 {
		return 0, fmt.Errorf("malformed Content-Range %q", v)
	}
	total := v[idx+1:]
	if total == "*" {
		return 0, fmt.Errorf("Content-Range %q carries no exact count", v)
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("malformed Content-Range %q", v)
	}
	return n, nil
}

func eq(v string) string { return "eq." + v }

// --- Profiles ---

type profiles struct{ s *Store }

func (p *profiles) Insert(ctx context.Context, pr *model.Profile) error {
	return p.s.insert(ctx, "profiles", pr, nil)
}

func (p *profiles) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	var rows []model.Profile
	if err := p.s.get(ctx, "profiles", map[string]string{"select": "*", "id": eq(id)}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("profile %s: %w", id, model.ErrNotFound)
	}
	// Multiple matches are undefined order; the first row wins.
	return &rows[0], nil
}

func (p *profiles) ListByRole(ctx context.Context, role string) ([]model.CaseloadParticipant, error) {
	var rows []model.CaseloadParticipant
	if err := p.s.get(ctx, "profiles", map[string]string{"select": "id,full_name", "role": eq(role)}, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// --- Curriculum ---

type curriculum struct{ s *Store }

func (c *curriculum) ProgramTree(ctx context.Context) ([]model.Module, error) {
	var rows []model.Module
	if err := c.s.get(ctx, "modules", map[string]string{"select": "*,lessons(*,exercises(*))"}, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *curriculum) ExerciseCount(ctx context.Context) (int, error) {
	return c.s.count(ctx, "exercises", map[string]string{"select": "id"})
}

// --- Responses ---

type responses struct{ s *Store }

func (r *responses) Insert(ctx context.Context, userID string, exerciseID int64, data json.RawMessage) ([]model.ExerciseResponse, error) {
	body := map[string]interface{}{
		"user_id":       userID,
		"exercise_id":   exerciseID,
		"response_data": data,
	}
	var rows []model.ExerciseResponse
	if err := r.s.insert(ctx, "exercise_responses", body, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *responses) CountByUser(ctx context.Context, userID string) (int, error) {
	return r.s.count(ctx, "exercise_responses", map[string]string{"select": "id", "user_id": eq(userID)})
}

func (r *responses) ListByUser(ctx context.Context, userID string) ([]model.ExerciseResponse, error) {
	var rows []model.ExerciseResponse
	params := map[string]string{"select": "*,exercises(title)", "user_id": eq(userID)}
	if err := r.s.get(ctx, "exercise_responses", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// --- Assessments ---

type assessments struct{ s *Store }

func (a *assessments) List(ctx context.Context) ([]model.Assessment, error) {
	var rows []model.Assessment
	if err := a.s.get(ctx, "assessments", map[string]string{"select": "id,name,questions"}, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// --- Submissions ---

type submissions struct{ s *Store }

func (s *submissions) Insert(ctx context.Context, userID string, assessmentID int64, answers []int, score int) (*model.AssessmentResult, error) {
	body := map[string]interface{}{
		"user_id":       userID,
		"assessment_id": assessmentID,
		"answers":       answers,
		"score":         score,
	}
	var rows []model.AssessmentResult
	if err := s.s.insert(ctx, "assessment_submissions", body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("supabase: insert assessment_submissions returned no representation")
	}
	return &rows[0], nil
}

func (s *submissions) ListByUser(ctx context.Context, userID string) ([]model.AssessmentResult, error) {
	var rows []model.AssessmentResult
	params := map[string]string{"select": "*,assessments(name)", "user_id": eq(userID)}
	if err := s.s.get(ctx, "assessment_submissions", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// --- Messages ---

type messages struct{ s *Store }

func (m *messages) Insert(ctx context.Context, msg *model.Message) (*model.Message, error) {
	body := map[string]interface{}{
		"sender_id":    msg.SenderID,
		"recipient_id": msg.RecipientID,
		"content":      msg.Content,
	}
	var rows []model.Message
	if err := m.s.insert(ctx, "messages", body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("supabase: insert messages returned no representation")
	}
	return &rows[0], nil
}

func (m *messages) Thread(ctx context.Context, userA, userB string) ([]model.Message, error) {
	var rows []model.Message
	args := map[string]string{"user_a": userA, "user_b": userB}
	if err := m.s.rpc(ctx, "get_message_thread", args, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// --- Assets ---

type assets struct{ s *Store }

func (a *assets) List(ctx context.Context) ([]model.AssetRecord, error) {
	var rows []model.AssetRecord
	if err := a.s.get(ctx, "assets", map[string]string{"select": "name,storage_path"}, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
