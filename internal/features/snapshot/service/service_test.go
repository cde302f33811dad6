package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	registrymodels "push-backend/internal/features/registry/models"
	registryservice "push-backend/internal/features/registry/service"
	"push-backend/internal/features/snapshot/service"
	"push-backend/internal/platform/docstore"
)

func TestSnapshot_EmptyStoreYieldsDefaults(t *testing.T) {
	svc := service.NewService(docstore.NewMemory())

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.JSONEq(t, `{"users":{}}`, string(snap.Points))
	assert.JSONEq(t, `{"entries":[]}`, string(snap.Airdrop))
	assert.NotZero(t, snap.GeneratedAt)
}

func TestSnapshot_ReflectsStoredDocuments(t *testing.T) {
	store := docstore.NewMemory()
	ctx := context.Background()

	registry := registryservice.NewService(store)
	require.NoError(t, registry.RegisterAirdrop(ctx, "4Nd1mYQkL6pVrHd6vXhzgc3JwbaGHCbnCerjqj9B7Kvk", &registrymodels.AirdropRequest{
		Email: "rider@example.com",
	}))

	snap, err := service.NewService(store).Snapshot(ctx)
	require.NoError(t, err)

	var airdrop struct {
		Entries []registrymodels.AirdropEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(snap.Airdrop, &airdrop))
	require.Len(t, airdrop.Entries, 1)
	assert.Equal(t, "rider@example.com", airdrop.Entries[0].Email)
}
