package ranking

import (
	"github.com/Mahesh-gd/google-flights-demo/internal/models"
)

// Weights of the composite "best" score. Price is taken per thousand rupees,
// duration per hour, and every stop costs two points. Lower is better.
const (
	PriceDivisor    = 1000.0
	DurationDivisor = 60.0
	StopPenalty     = 2.0
)

// BestScore ranks an itinerary by its outbound leg: normalized price plus
// normalized duration plus a stop penalty. An itinerary without legs scores
// on price alone.
func BestScore(it models.Itinerary) float64 {
	score := it.Price.Raw / PriceDivisor
	if len(it.Legs) == 0 {
		return score
	}
	leg := it.Legs[0]
	score += float64(leg.DurationInMinutes) / DurationDivisor
	score += float64(leg.StopCount) * StopPenalty
	return score
}
