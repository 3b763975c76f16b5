package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stillpoint-health/backend/internal/model"
)

const testSecret = "unit-test-secret"

type fakeProfiles struct {
	byID map[string]*model.Profile
	err  error
}

func (f *fakeProfiles) Insert(ctx context.Context, p *model.Profile) error { panic("unused") }
func (f *fakeProfiles) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, model.ErrNotFound
}
func (f *fakeProfiles) ListByRole(ctx context.Context, role string) ([]model.CaseloadParticipant, error) {
	panic("unused")
}

func signToken(t *testing.T, secret, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func TestVerifyResolvesIdentity(t *testing.T) {
	profiles := &fakeProfiles{byID: map[string]*model.Profile{
		"u1": {ID: "u1", Role: "supporter", FullName: "Ana Reyes"},
	}}
	v := NewTokenVerifier(testSecret, profiles)

	id, err := v.Verify(context.Background(), "Bearer "+signToken(t, testSecret, "u1", time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "u1", id.ID)
	assert.Equal(t, "supporter", id.Role)
	assert.Equal(t, "Ana Reyes", id.FullName)
}

func TestVerifyIgnoresScheme(t *testing.T) {
	profiles := &fakeProfiles{byID: map[string]*model.Profile{"u1": {ID: "u1"}}}
	v := NewTokenVerifier(testSecret, profiles)
	tok := signToken(t, testSecret, "u1", time.Hour)

	for _, header := range []string{"Bearer " + tok, "Token " + tok, "anything " + tok} {
		id, err := v.Verify(context.Background(), header)
		require.NoError(t, err, header)
		assert.Equal(t, "u1", id.ID)
	}
}

func TestVerifyDefaultsRoleToParticipant(t *testing.T) {
	profiles := &fakeProfiles{byID: map[string]*model.Profile{"u1": {ID: "u1"}}}
	v := NewTokenVerifier(testSecret, profiles)

	id, err := v.Verify(context.Background(), "Bearer "+signToken(t, testSecret, "u1", time.Hour))
	require.NoError(t, err)
	assert.Equal(t, model.RoleParticipant, id.Role)
}

func TestVerifyUnauthorizedKinds(t *testing.T) {
	profiles := &fakeProfiles{byID: map[string]*model.Profile{"u1": {ID: "u1"}}}
	v := NewTokenVerifier(testSecret, profiles)

	cases := map[string]string{
		"missing header":   "",
		"single segment":   "Bearer",
		"garbage token":    "Bearer not-a-jwt",
		"wrong secret":     "Bearer " + signToken(t, "other-secret", "u1", time.Hour),
		"expired token":    "Bearer " + signToken(t, testSecret, "u1", -time.Hour),
		"no subject claim": "Bearer " + signToken(t, testSecret, "", time.Hour),
	}
	for name, header := range cases {
		_, err := v.Verify(context.Background(), header)
		require.ErrorIs(t, err, model.ErrUnauthorized, name)
	}
}

func TestVerifyRejectsForeignSigningAlg(t *testing.T) {
	profiles := &fakeProfiles{byID: map[string]*model.Profile{"u1": {ID: "u1"}}}
	v := NewTokenVerifier(testSecret, profiles)

	claims := jwt.RegisteredClaims{Subject: "u1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), "Bearer "+tok)
	require.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestVerifyUnknownSubjectIsNotFound(t *testing.T) {
	v := NewTokenVerifier(testSecret, &fakeProfiles{byID: map[string]*model.Profile{}})

	_, err := v.Verify(context.Background(), "Bearer "+signToken(t, testSecret, "ghost", time.Hour))
	require.ErrorIs(t, err, model.ErrNotFound)
	assert.NotErrorIs(t, err, model.ErrUnauthorized)
}

func TestVerifyLookupFailureStaysInternal(t *testing.T) {
	transport := errors.New("connection refused")
	v := NewTokenVerifier(testSecret, &fakeProfiles{err: transport})

	_, err := v.Verify(context.Background(), "Bearer "+signToken(t, testSecret, "u1", time.Hour))
	require.ErrorIs(t, err, transport)
	assert.NotErrorIs(t, err, model.ErrUnauthorized)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}
