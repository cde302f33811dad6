package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "push-backend/internal/common/errors"
	"push-backend/internal/features/registry/models"
	"push-backend/internal/platform/docstore"
)

// Document names for the two registries.
const (
	SignupDocName  = "signup.json"
	AirdropDocName = "airdrop.json"
)

type signupDoc struct {
	Entries []models.SignupEntry `json:"entries"`
}

type airdropDoc struct {
	Entries []models.AirdropEntry `json:"entries"`
}

// Service maintains the signup and airdrop registries. Both are upserts:
// re-registering replaces the previous entry for the same key.
type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Signup(ctx context.Context, req *models.SignupRequest) error {
	if err := req.Validate(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, "bad_input")
	}

	entry := models.SignupEntry{
		Wallet:    req.Wallet,
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now().UnixMilli(),
	}

	err := s.store.Update(ctx, SignupDocName, func(raw []byte) (interface{}, error) {
		var doc signupDoc
		if raw != nil {
			if err := json.Unmarshal(raw, &doc); err != nil {
				return nil, fmt.Errorf("failed to unmarshal signup document: %w", err)
			}
		}

		for i := range doc.Entries {
			if doc.Entries[i].Wallet == entry.Wallet {
				doc.Entries[i] = entry
				return doc, nil
			}
		}
		doc.Entries = append(doc.Entries, entry)
		return doc, nil
	})
	if err != nil {
		return apperrors.NewStorageError("signup upsert", err)
	}
	return nil
}

// RegisterAirdrop upserts an airdrop registration for the authenticated
// address.
func (s *Service) RegisterAirdrop(ctx context.Context, address string, req *models.AirdropRequest) error {
	if address == "" {
		return apperrors.NewUnauthorizedError("unauthorized")
	}
	if err := req.Validate(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, "bad_input")
	}

	entry := models.AirdropEntry{
		Address:   address,
		Email:     req.Email,
		Twitter:   req.Twitter,
		Ref:       req.Ref,
		CreatedAt: time.Now().UnixMilli(),
	}

	err := s.store.Update(ctx, AirdropDocName, func(raw []byte) (interface{}, error) {
		var doc airdropDoc
		if raw != nil {
			if err := json.Unmarshal(raw, &doc); err != nil {
				return nil, fmt.Errorf("failed to unmarshal airdrop document: %w", err)
			}
		}

		for i := range doc.Entries {
			if doc.Entries[i].Address == entry.Address {
				doc.Entries[i] = entry
				return doc, nil
			}
		}
		doc.Entries = append(doc.Entries, entry)
		return doc, nil
	})
	if err != nil {
		return apperrors.NewStorageError("airdrop upsert", err)
	}
	return nil
}
