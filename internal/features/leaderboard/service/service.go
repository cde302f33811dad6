package service

import (
	"context"
	"time"

	"push-backend/internal/common/cache"
	claimmodels "push-backend/internal/features/claim/models"
	claimservice "push-backend/internal/features/claim/service"
)

const (
	topLimit = 100

	cacheKey = "leaderboard:top"
	cacheTTL = 30 * time.Second
)

// LeaderboardResponse is the public leaderboard payload.
type LeaderboardResponse struct {
	Items []claimmodels.LeaderboardEntry `json:"items"`
}

// Service serves the points leaderboard, optionally cached.
type Service struct {
	claims *claimservice.Service
	cache  *cache.Service
}

// NewService creates the leaderboard service. cache may be nil, in which
// case every request reads the ledger directly.
func NewService(claims *claimservice.Service, cache *cache.Service) *Service {
	return &Service{claims: claims, cache: cache}
}

func (s *Service) Leaderboard(ctx context.Context) (*LeaderboardResponse, error) {
	if s.cache == nil {
		return s.compute(ctx)
	}

	var resp LeaderboardResponse
	err := s.cache.GetOrSet(ctx, cacheKey, &resp, cacheTTL, func() (interface{}, error) {
		return s.compute(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *Service) compute(ctx context.Context) (*LeaderboardResponse, error) {
	entries, err := s.claims.Top(ctx, topLimit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []claimmodels.LeaderboardEntry{}
	}
	return &LeaderboardResponse{Items: entries}, nil
}
