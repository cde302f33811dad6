package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"push-backend/internal/common/crypto"
	apperrors "push-backend/internal/common/errors"
	"push-backend/internal/features/claim/models"
	"push-backend/internal/features/claim/repository"
)

// Anti-cheat bounds.
const (
	// Derived average speed cap, meters per second (~43 km/h).
	maxAvgMps = 12.0

	// Tolerated gap between reported duration and wall-clock span, ms.
	timingSlackMs = 10000
)

// Service validates signed ride proofs and awards points.
type Service struct {
	repo repository.PointsRepository
}

func NewService(repo repository.PointsRepository) *Service {
	return &Service{repo: repo}
}

// Claim runs the full validation pipeline over a signed proof and, if every
// check passes, credits the wallet. Checks run in order; the first failure
// wins and nothing is persisted before all of them pass.
func (s *Service) Claim(ctx context.Context, req *models.ClaimRequest) (*models.ClaimResponse, error) {
	proof := &req.Proof

	if err := proof.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "bad_input")
	}

	canonical, err := proof.Canonical()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "bad_input")
	}
	if !crypto.VerifyByAddress(canonical, req.Signature, proof.Wallet) {
		return nil, apperrors.New(apperrors.ErrCodeBadSignature, "bad_signature")
	}

	if proof.DistanceMeters/proof.Seconds > maxAvgMps {
		return nil, apperrors.New(apperrors.ErrCodeAntiCheat, "unrealistic_speed")
	}
	if float64(proof.EndedAt-proof.StartedAt) < proof.Seconds*1000-timingSlackMs {
		return nil, apperrors.New(apperrors.ErrCodeAntiCheat, "bad_timing")
	}

	delta := Score(proof)
	if delta < 1 {
		delta = 1
	}

	total, err := s.repo.Award(ctx, proof.Wallet, proofID(canonical), delta)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyClaimed) {
			return nil, apperrors.New(apperrors.ErrCodeAlreadyClaimed, "already_claimed")
		}
		return nil, apperrors.NewStorageError("award points", err)
	}

	return &models.ClaimResponse{OK: true, Delta: delta, Total: total}, nil
}

// Top exposes the points leaderboard read model.
func (s *Service) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	entries, err := s.repo.Top(ctx, limit)
	if err != nil {
		return nil, apperrors.NewStorageError("read leaderboard", err)
	}
	return entries, nil
}

// proofID derives the idempotency key of a proof from its canonical bytes.
func proofID(canonical []byte) string {
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}
