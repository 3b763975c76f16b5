package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stillpoint-health/backend/internal/accounts"
	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/store"
)

// AuthService handles signup and login against the external auth provider.
type AuthService struct {
	provider accounts.Provider
	profiles store.Profiles
	log      zerolog.Logger
}

func NewAuthService(p accounts.Provider, profiles store.Profiles, log zerolog.Logger) *AuthService {
	return &AuthService{provider: p, profiles: profiles, log: log}
}

// Signup creates the auth record first, then the profile row keyed by the new
// subject id. When the profile insert fails the auth record is deleted again
// (best effort) so the two-step write does not leave a half-registered user.
func (s *AuthService) Signup(ctx context.Context, email, password, fullName string) (string, error) {
	id, err := s.provider.CreateUser(ctx, email, password)
	if err != nil {
		return "", err
	}

	profile := &model.Profile{ID: id, Email: email, FullName: fullName}
	if err := s.profiles.Insert(ctx, profile); err != nil {
		if derr := s.provider.DeleteUser(ctx, id); derr != nil {
			s.log.Error().Stack().Err(derr).Str("user_id", id).
				Msg("failed to compensate auth record after profile insert failure")
		}
		return "", fmt.Errorf("create profile: %w", err)
	}
	return id, nil
}

// Login delegates the credential check entirely to the provider.
func (s *AuthService) Login(ctx context.Context, email, password string) (*accounts.Session, error) {
	return s.provider.SignIn(ctx, email, password)
}
