package services

import (
	"context"
	"time"

	"github.com/stillpoint-health/backend/internal/assets"
	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/store"
)

// AssetService lists the asset catalog with freshly signed URLs.
type AssetService struct {
	store  store.Store
	signer assets.Signer
	ttl    time.Duration
}

func NewAssetService(s store.Store, signer assets.Signer, ttl time.Duration) *AssetService {
	return &AssetService{store: s, signer: signer, ttl: ttl}
}

// Assets signs every catalog row. One failed signing aborts the whole
// listing; a partial catalog would be indistinguishable from a complete one.
func (s *AssetService) Assets(ctx context.Context) ([]model.Asset, error) {
	records, err := s.store.Assets().List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Asset, 0, len(records))
	for _, rec := range records {
		url, err := s.signer.SignedURL(ctx, rec.StoragePath, s.ttl)
		if err != nil {
			return nil, err
		}
		out = append(out, model.Asset{Name: rec.Name, URL: url})
	}
	return out, nil
}
