package service

import (
	"context"
	"encoding/json"
	"time"

	apperrors "push-backend/internal/common/errors"
	claimrepo "push-backend/internal/features/claim/repository/docstore"
	registryservice "push-backend/internal/features/registry/service"
	"push-backend/internal/platform/docstore"
)

// Snapshot is a full operational dump of the points ledger and airdrop
// registry, for offline processing.
type Snapshot struct {
	Points      json.RawMessage `json:"points"`
	Airdrop     json.RawMessage `json:"airdrop"`
	GeneratedAt int64           `json:"generatedAt"` // epoch ms
}

type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	points, err := s.readRaw(ctx, claimrepo.PointsDocName, `{"users":{}}`)
	if err != nil {
		return nil, apperrors.NewStorageError("read points", err)
	}

	airdrop, err := s.readRaw(ctx, registryservice.AirdropDocName, `{"entries":[]}`)
	if err != nil {
		return nil, apperrors.NewStorageError("read airdrop", err)
	}

	return &Snapshot{
		Points:      points,
		Airdrop:     airdrop,
		GeneratedAt: time.Now().UnixMilli(),
	}, nil
}

func (s *Service) readRaw(ctx context.Context, name, def string) (json.RawMessage, error) {
	var raw json.RawMessage
	found, err := s.store.Read(ctx, name, &raw)
	if err != nil {
		return nil, err
	}
	if !found {
		return json.RawMessage(def), nil
	}
	return raw, nil
}
