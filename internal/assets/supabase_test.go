package assets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/v1/object/sign/assets/guides/intro.pdf", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 3600, body["expiresIn"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"signedURL":"/object/sign/assets/guides/intro.pdf?token=abc"}`))
	}))
	defer srv.Close()

	s := NewSupabaseSigner(srv.URL, "service-key", "assets")
	url, err := s.SignedURL(context.Background(), "guides/intro.pdf", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/storage/v1/object/sign/assets/guides/intro.pdf?token=abc", url)
}

func TestSignedURLFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"object not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewSupabaseSigner(srv.URL, "service-key", "assets")
	_, err := s.SignedURL(context.Background(), "missing.pdf", time.Hour)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
