package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "push-backend/internal/common/errors"
	"push-backend/internal/features/registry/models"
	"push-backend/internal/features/registry/service"
	"push-backend/internal/platform/docstore"
)

const testWallet = "4Nd1mYQkL6pVrHd6vXhzgc3JwbaGHCbnCerjqj9B7Kvk"

func readSignups(t *testing.T, store docstore.Store) []models.SignupEntry {
	t.Helper()
	var doc struct {
		Entries []models.SignupEntry `json:"entries"`
	}
	found, err := store.Read(context.Background(), service.SignupDocName, &doc)
	require.NoError(t, err)
	require.True(t, found)
	return doc.Entries
}

func readAirdrops(t *testing.T, store docstore.Store) []models.AirdropEntry {
	t.Helper()
	var doc struct {
		Entries []models.AirdropEntry `json:"entries"`
	}
	found, err := store.Read(context.Background(), service.AirdropDocName, &doc)
	require.NoError(t, err)
	require.True(t, found)
	return doc.Entries
}

func TestSignup_AppendsEntry(t *testing.T) {
	store := docstore.NewMemory()
	svc := service.NewService(store)

	err := svc.Signup(context.Background(), &models.SignupRequest{
		Wallet: testWallet,
		Name:   "Rider One",
		Email:  "rider@example.com",
	})
	require.NoError(t, err)

	entries := readSignups(t, store)
	require.Len(t, entries, 1)
	assert.Equal(t, testWallet, entries[0].Wallet)
	assert.Equal(t, "rider@example.com", entries[0].Email)
	assert.NotZero(t, entries[0].CreatedAt)
}

func TestSignup_ReplacesSameWallet(t *testing.T) {
	store := docstore.NewMemory()
	svc := service.NewService(store)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &models.SignupRequest{Wallet: testWallet, Email: "old@example.com"}))
	require.NoError(t, svc.Signup(ctx, &models.SignupRequest{Wallet: testWallet, Email: "new@example.com"}))

	entries := readSignups(t, store)
	require.Len(t, entries, 1)
	assert.Equal(t, "new@example.com", entries[0].Email)
}

func TestSignup_RejectsBadInput(t *testing.T) {
	svc := service.NewService(docstore.NewMemory())
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.SignupRequest
	}{
		{"short wallet", models.SignupRequest{Wallet: "abc", Email: "a@b.co"}},
		{"bad email", models.SignupRequest{Wallet: testWallet, Email: "not-an-email"}},
		{"long name", models.SignupRequest{Wallet: testWallet, Name: strings.Repeat("x", 81), Email: "a@b.co"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Signup(ctx, &tc.req)
			require.Error(t, err)
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
		})
	}
}

func TestRegisterAirdrop_UpsertsByAddress(t *testing.T) {
	store := docstore.NewMemory()
	svc := service.NewService(store)
	ctx := context.Background()

	require.NoError(t, svc.RegisterAirdrop(ctx, testWallet, &models.AirdropRequest{
		Email:   "rider@example.com",
		Twitter: "@rider",
	}))
	require.NoError(t, svc.RegisterAirdrop(ctx, testWallet, &models.AirdropRequest{
		Email: "rider2@example.com",
		Ref:   "FRIEND1",
	}))

	entries := readAirdrops(t, store)
	require.Len(t, entries, 1)
	assert.Equal(t, testWallet, entries[0].Address)
	assert.Equal(t, "rider2@example.com", entries[0].Email)
	assert.Empty(t, entries[0].Twitter)
	assert.Equal(t, "FRIEND1", entries[0].Ref)
}

func TestRegisterAirdrop_RequiresAddress(t *testing.T) {
	svc := service.NewService(docstore.NewMemory())

	err := svc.RegisterAirdrop(context.Background(), "", &models.AirdropRequest{Email: "a@b.co"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, appErr.Code)
}
