package models

import (
	"encoding/json"
	"fmt"

	"push-backend/internal/common/validation"
)

// RideProof is the client-asserted, signed telemetry record for one ride.
// Field order matters: the canonical serialization signed by the wallet is
// the JSON encoding of this struct in declaration order.
type RideProof struct {
	Wallet         string  `json:"wallet"`
	DistanceMeters float64 `json:"distanceMeters"`
	Seconds        float64 `json:"seconds"`
	AvgKmh         float64 `json:"avgKmh"`
	EnergyUsed     float64 `json:"energyUsed"`
	Device         string  `json:"device"`
	StartedAt      int64   `json:"startedAt"` // epoch ms
	EndedAt        int64   `json:"endedAt"`   // epoch ms
}

// Canonical returns the exact byte encoding the wallet signed.
func (p *RideProof) Canonical() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize proof: %w", err)
	}
	return data, nil
}

// Validate performs structural validation of the proof ranges.
func (p *RideProof) Validate() error {
	if p.Wallet == "" {
		return fmt.Errorf("wallet is required")
	}
	if err := validation.ValidateRange(p.DistanceMeters, 0, 100000, "distanceMeters"); err != nil {
		return err
	}
	if err := validation.ValidateRange(p.Seconds, 1, 21600, "seconds"); err != nil {
		return err
	}
	if err := validation.ValidateRange(p.AvgKmh, 0, 60, "avgKmh"); err != nil {
		return err
	}
	if err := validation.ValidateRange(p.EnergyUsed, 0, 5, "energyUsed"); err != nil {
		return err
	}
	return validation.ValidateMaxLength(p.Device, "device", validation.MaxDeviceLength)
}

// ClaimRequest is a signed ride proof submission.
// @Description Ride proof with its detached signature
type ClaimRequest struct {
	Proof     RideProof `json:"proof" binding:"required"`
	Signature string    `json:"signature" binding:"required" example:"base64_encoded_signature"`
}

// ClaimResponse reports the points awarded for an accepted claim.
// @Description Points delta and new cumulative total
type ClaimResponse struct {
	OK    bool  `json:"ok"`
	Delta int64 `json:"delta"`
	Total int64 `json:"total"`
}

// LeaderboardEntry is one row of the points leaderboard.
type LeaderboardEntry struct {
	Address string `json:"address"`
	Points  int64  `json:"points"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error" example:"unrealistic_speed"`
}
