package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"push-backend/internal/features/claim/models"
	"push-backend/internal/features/claim/repository"
	"push-backend/internal/platform/docstore"
)

// PointsDocName is the single document holding every user's balance.
const PointsDocName = "points.json"

type pointsDoc struct {
	Users map[string]userRecord `json:"users"`
}

type userRecord struct {
	Points    int64 `json:"points"`
	UpdatedAt int64 `json:"updatedAt"` // epoch ms
	// Proof hashes already awarded, kept to reject resubmission.
	Claims []string `json:"claims,omitempty"`
}

type pointsRepository struct {
	store docstore.Store
}

func NewPointsRepository(store docstore.Store) repository.PointsRepository {
	return &pointsRepository{store: store}
}

func (r *pointsRepository) Award(ctx context.Context, address, proofID string, delta int64) (int64, error) {
	var total int64

	err := r.store.Update(ctx, PointsDocName, func(raw []byte) (interface{}, error) {
		doc := pointsDoc{Users: map[string]userRecord{}}
		if raw != nil {
			if err := json.Unmarshal(raw, &doc); err != nil {
				return nil, fmt.Errorf("failed to unmarshal points document: %w", err)
			}
			if doc.Users == nil {
				doc.Users = map[string]userRecord{}
			}
		}

		record := doc.Users[address]
		for _, claimed := range record.Claims {
			if claimed == proofID {
				return nil, repository.ErrAlreadyClaimed
			}
		}

		record.Points += delta
		record.UpdatedAt = time.Now().UnixMilli()
		record.Claims = append(record.Claims, proofID)
		doc.Users[address] = record

		total = record.Points
		return doc, nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *pointsRepository) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	doc := pointsDoc{Users: map[string]userRecord{}}
	if _, err := r.store.Read(ctx, PointsDocName, &doc); err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(doc.Users))
	for address, record := range doc.Users {
		entries = append(entries, models.LeaderboardEntry{Address: address, Points: record.Points})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].Address < entries[j].Address
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
