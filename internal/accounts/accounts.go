// Package accounts defines the external authentication provider surface.
// Password hashing, session issuance and email confirmation are entirely
// delegated; this service never inspects or stores credentials.
package accounts

import (
	"context"
	"encoding/json"
)

// Session is an opaque token pair issued by the provider on sign-in.
// User is passed through verbatim.
type Session struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         json.RawMessage `json:"user"`
}

// Provider exposes the admin user-creation and password sign-in operations.
type Provider interface {
	// CreateUser creates an auto-confirmed auth record and returns the new
	// subject id. Provider rejections map to model.ErrInvalid.
	CreateUser(ctx context.Context, email, password string) (string, error)
	// SignIn performs a password grant. Rejections map to model.ErrUnauthorized
	// carrying the provider's error text.
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// DeleteUser removes an auth record. Used to compensate a failed signup.
	DeleteUser(ctx context.Context, id string) error
}
