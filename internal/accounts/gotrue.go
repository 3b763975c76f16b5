package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/stillpoint-health/backend/internal/model"
)

// GoTrue talks to the Supabase auth API. Admin operations use the
// service-role key; the password grant uses the anon key.
type GoTrue struct {
	rest       *resty.Client
	anonKey    string
	serviceKey string
}

// NewGoTrue constructs a provider client for the given Supabase project URL.
func NewGoTrue(baseURL, anonKey, serviceRoleKey string) *GoTrue {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/") + "/auth/v1").
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	return &GoTrue{rest: c, anonKey: anonKey, serviceKey: serviceRoleKey}
}

func (g *GoTrue) admin() *resty.Request {
	return g.rest.R().
		SetHeader("apikey", g.serviceKey).
		SetHeader("Authorization", "Bearer "+g.serviceKey)
}

func (g *GoTrue) anon() *resty.Request {
	return g.rest.R().
		SetHeader("apikey", g.anonKey).
		SetHeader("Authorization", "Bearer "+g.anonKey)
}

// CreateUser implements Provider.
func (g *GoTrue) CreateUser(ctx context.Context, email, password string) (string, error) {
	body := map[string]interface{}{
		"email":         email,
		"password":      password,
		"email_confirm": true,
	}
	var out struct {
		ID string `json:"id"`
	}
	resp, err := g.admin().SetContext(ctx).SetBody(body).SetResult(&out).Post("/admin/users")
	if err != nil {
		return "", fmt.Errorf("gotrue: create user: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: %s", model.ErrInvalid, providerMessage(resp))
	}
	if out.ID == "" {
		return "", fmt.Errorf("gotrue: create user: response carries no id")
	}
	return out.ID, nil
}

// SignIn implements Provider.
func (g *GoTrue) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var out Session
	resp, err := g.anon().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(body).
		SetResult(&out).
		Post("/token")
	if err != nil {
		return nil, fmt.Errorf("gotrue: sign in: %w", err)
	}
	if resp.IsError() {
		// The provider's error text is part of the login contract.
		return nil, fmt.Errorf("%w: %s", model.ErrUnauthorized, providerMessage(resp))
	}
	return &out, nil
}

// DeleteUser implements Provider.
func (g *GoTrue) DeleteUser(ctx context.Context, id string) error {
	resp, err := g.admin().SetContext(ctx).Delete("/admin/users/" + id)
	if err != nil {
		return fmt.Errorf("gotrue: delete user: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("gotrue: delete user: status %d: %s", resp.StatusCode(), providerMessage(resp))
	}
	return nil
}

// HealthPing implements health.Pinger against the provider health endpoint.
func (g *GoTrue) HealthPing(ctx context.Context) error {
	resp, err := g.anon().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("gotrue: health: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("gotrue: health: status %d", resp.StatusCode())
	}
	return nil
}

// providerMessage extracts the most specific error text the provider offers.
func providerMessage(resp *resty.Response) string {
	var payload struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err == nil {
		for _, m := range []string{payload.Msg, payload.Message, payload.ErrorDescription, payload.Error} {
			if m != "" {
				return m
			}
		}
	}
	return strings.TrimSpace(resp.String())
}
