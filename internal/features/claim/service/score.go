package service

import (
	"math"

	"push-backend/internal/features/claim/models"
)

// Speed window rewarded at full multiplier, km/h.
const (
	speedSweetLow  = 6.0
	speedSweetHigh = 25.0
)

// Score maps a ride proof to its point value. Pure and deterministic.
//
// Sustained pace inside the 6-25 km/h window scales the base linearly up to
// 1.68x; slower or faster motion is damped. The energy multiplier floors at
// 0.25 so a depleted rider still earns.
func Score(proof *models.RideProof) int64 {
	base := proof.Seconds * 0.6

	speed := proof.AvgKmh
	var speedMult float64
	switch {
	case speed < speedSweetLow:
		speedMult = (speed / speedSweetLow) * 0.6
	case speed > speedSweetHigh:
		speedMult = (speedSweetHigh / speed) * 0.6
	default:
		speedMult = 1 + (speed-speedSweetLow)/28
	}

	energyMult := math.Max(0.25, math.Min(1, proof.EnergyUsed/5))

	return int64(math.Round(base * speedMult * energyMult))
}
