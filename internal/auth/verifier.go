// Package auth verifies bearer credentials and resolves them to identities.
package auth

import (
	"context"
	"fmt"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/store"
)

// Verifier turns a raw Authorization header value into an Identity.
type Verifier interface {
	Verify(ctx context.Context, authorization string) (*model.Identity, error)
}

// TokenVerifier validates HS256 tokens signed with the shared provider secret
// and resolves the subject claim against the profiles table. Every call
// re-verifies and re-fetches; there is no cache.
type TokenVerifier struct {
	secret   []byte
	profiles store.Profiles
}

func NewTokenVerifier(secret string, profiles store.Profiles) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), profiles: profiles}
}

// Verify implements Verifier. The header's scheme is ignored: only the second
// whitespace-delimited segment is treated as the token.
func (v *TokenVerifier) Verify(ctx context.Context, authorization string) (*model.Identity, error) {
	if authorization == "" {
		return nil, fmt.Errorf("%w: authorization header missing", model.ErrUnauthorized)
	}
	parts := strings.Fields(authorization)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: malformed authorization header", model.ErrUnauthorized)
	}

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(parts[1], &claims,
		func(*jwt.Token) (interface{}, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", model.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token carries no subject", model.ErrUnauthorized)
	}

	// Lookup failures other than a missing profile stay as-is and surface as
	// internal errors, not as auth failures.
	profile, err := v.profiles.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	role := profile.Role
	if role == "" {
		role = model.RoleParticipant
	}
	return &model.Identity{ID: claims.Subject, Role: role, FullName: profile.FullName}, nil
}
