// Package rating implements the ELO-style paired rating update.
package rating

import "math"

// KFactor controls how far a single match can move a rating
const KFactor = 32

// Expected returns the expected score for a player rated a against an
// opponent rated b
func Expected(a, b int) float64 {
	return 1 / (1 + math.Pow(10, float64(b-a)/400))
}

// Update computes the paired rating deltas for a resolved match. The first
// player is the winner unless draw is set, in which case order carries no
// meaning. Deltas are zero-sum up to rounding.
func Update(winnerRating, loserRating int, draw bool) (winnerDelta, loserDelta int) {
	expectedWinner := Expected(winnerRating, loserRating)
	expectedLoser := Expected(loserRating, winnerRating)

	winnerScore, loserScore := 1.0, 0.0
	if draw {
		winnerScore, loserScore = 0.5, 0.5
	}

	winnerDelta = int(math.Round(KFactor * (winnerScore - expectedWinner)))
	loserDelta = int(math.Round(KFactor * (loserScore - expectedLoser)))
	return winnerDelta, loserDelta
}
