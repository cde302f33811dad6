package repository

import (
	"context"
	"errors"

	"push-backend/internal/features/claim/models"
)

// ErrAlreadyClaimed is returned when a proof has already been awarded for
// the address.
var ErrAlreadyClaimed = errors.New("proof already claimed")

// PointsRepository owns the cumulative points ledger. Points only ever grow;
// claims are deduplicated by proof identity.
type PointsRepository interface {
	// Award adds delta to the address balance and records proofID against
	// it. Returns the new cumulative total, or ErrAlreadyClaimed when the
	// proofID was seen before.
	Award(ctx context.Context, address, proofID string, delta int64) (int64, error)

	// Top returns up to limit addresses ordered by points, best first.
	Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}
