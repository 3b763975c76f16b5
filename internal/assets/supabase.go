package assets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// SupabaseSigner signs object paths through the Supabase Storage API for a
// single fixed bucket.
type SupabaseSigner struct {
	rest    *resty.Client
	baseURL string
	bucket  string
}

// NewSupabaseSigner constructs a signer for the given project URL and bucket.
func NewSupabaseSigner(baseURL, serviceRoleKey, bucket string) *SupabaseSigner {
	base := strings.TrimRight(baseURL, "/")
	c := resty.New().
		SetBaseURL(base + "/storage/v1").
		SetHeader("apikey", serviceRoleKey).
		SetHeader("Authorization", "Bearer "+serviceRoleKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	return &SupabaseSigner{rest: c, baseURL: base, bucket: bucket}
}

// SignedURL implements Signer.
func (s *SupabaseSigner) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	body := map[string]interface{}{"expiresIn": int(ttl.Seconds())}
	var out struct {
		SignedURL string `json:"signedURL"`
	}
	resp, err := s.rest.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post("/object/sign/" + s.bucket + "/" + path)
	if err != nil {
		return "", fmt.Errorf("storage: sign %s: %w", path, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("storage: sign %s: status %d: %s", path, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	if out.SignedURL == "" {
		return "", fmt.Errorf("storage: sign %s: response carries no signed URL", path)
	}
	// The API returns a path relative to /storage/v1.
	return s.baseURL + "/storage/v1" + out.SignedURL, nil
}

// HealthPing implements health.Pinger via a bucket listing.
func (s *SupabaseSigner) HealthPing(ctx context.Context) error {
	resp, err := s.rest.R().SetContext(ctx).Get("/bucket")
	if err != nil {
		return fmt.Errorf("storage: health: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("storage: health: status %d", resp.StatusCode())
	}
	return nil
}
