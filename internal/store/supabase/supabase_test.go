package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stillpoint-health/backend/internal/model"
)

func TestParseContentRangeTotal(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0-24/3573", 3573, false},
		{"*/0", 0, false},
		{"*/*", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := parseContentRangeTotal(c.in)
		if c.wantErr {
			assert.Error(t, err, c.in)
			continue
		}
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestProfilesGetByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("id") {
		case "eq.u1":
			_, _ = w.Write([]byte(`[{"id":"u1","role":"supporter","full_name":"Ana"}]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	st := New(srv.URL, "test-key")

	p, err := st.Profiles().GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "supporter", p.Role)
	assert.Equal(t, "Ana", p.FullName)

	_, err = st.Profiles().GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestExerciseCountUsesContentRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		assert.Equal(t, "count=exact", r.Header.Get("Prefer"))
		w.Header().Set("Content-Range", "0-0/17")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	st := New(srv.URL, "k")
	n, err := st.Curriculum().ExerciseCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 17, n)
}

func TestSubmissionInsertReturnsRepresentation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/assessment_submissions", r.URL.Path)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "u1", body["user_id"])
		assert.EqualValues(t, 12, body["score"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":9,"assessment_id":2,"score":12,"answers":[3,4,5],"created_at":"2026-01-02T03:04:05Z"}]`))
	}))
	defer srv.Close()

	st := New(srv.URL, "k")
	res, err := st.Submissions().Insert(context.Background(), "u1", 2, []int{3, 4, 5}, 12)
	require.NoError(t, err)
	assert.EqualValues(t, 9, res.ID)
	assert.Equal(t, 12, res.Score)
}

func TestMessageThreadRPC(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/rpc/get_message_thread", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var args map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&args))
		assert.Equal(t, "a", args["user_a"])
		assert.Equal(t, "b", args["user_b"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"sender_id":"a","recipient_id":"b","content":"hi"}]`))
	}))
	defer srv.Close()

	st := New(srv.URL, "k")
	msgs, err := st.Messages().Thread(context.Background(), "a", "b")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hi", msgs[0].Content)
}

func TestDelegatedFailureSurfacesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	st := New(srv.URL, "k")
	_, err := st.Assessments().List(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
	assert.Contains(t, err.Error(), "403")
}
