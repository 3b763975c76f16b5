// Package assets issues time-limited signed URLs for stored binary content.
package assets

import (
	"context"
	"time"
)

// Signer exchanges a storage path for a short-lived signed URL.
// URLs are generated per request and never stored.
type Signer interface {
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
}
