// Package filter derives the displayed result list: a pure predicate pass
// followed by a stable sort. Inputs are never mutated.
package filter

import (
	"sort"
	"strings"

	"github.com/Mahesh-gd/google-flights-demo/internal/models"
	"github.com/Mahesh-gd/google-flights-demo/internal/ranking"
	"github.com/Mahesh-gd/google-flights-demo/pkg/format"
)

// Apply filters and then sorts itineraries. A nil spec filters nothing; an
// unrecognized sort key sorts as "best".
func Apply(itineraries []models.Itinerary, spec *models.FilterSpec, sortBy string) []models.Itinerary {
	return Sort(Filter(itineraries, spec), sortBy)
}

// Filter keeps the itineraries matching every enforced ceiling of spec. All
// leg-level predicates look at the outbound leg only.
func Filter(itineraries []models.Itinerary, spec *models.FilterSpec) []models.Itinerary {
	result := make([]models.Itinerary, 0, len(itineraries))
	if spec == nil {
		return append(result, itineraries...)
	}

	for _, it := range itineraries {
		if matches(it, spec) {
			result = append(result, it)
		}
	}

	return result
}

func matches(it models.Itinerary, spec *models.FilterSpec) bool {
	if len(it.Legs) == 0 {
		return false
	}
	leg := it.Legs[0]

	switch spec.Stops {
	case models.StopsNonstop:
		if leg.StopCount != 0 {
			return false
		}
	case models.StopsOneStop:
		if leg.StopCount > 1 {
			return false
		}
	case models.StopsTwoStop:
		if leg.StopCount > 2 {
			return false
		}
	}

	if !matchesAirlines(it, spec.Airlines) {
		return false
	}

	// Only the ceiling is enforced; the floor rides along with the slider
	// state but has never taken part in the predicate.
	if spec.PriceRange != nil && it.Price.Raw > spec.PriceRange.Max {
		return false
	}

	if spec.MaxDuration != nil && leg.DurationInMinutes > *spec.MaxDuration {
		return false
	}

	if spec.DepartureTimeRange != nil {
		if hour, ok := localHour(leg.Departure); ok && hour > spec.DepartureTimeRange.Max {
			return false
		}
	}
	if spec.ArrivalTimeRange != nil {
		if hour, ok := localHour(leg.Arrival); ok && hour > spec.ArrivalTimeRange.Max {
			return false
		}
	}

	return true
}

func matchesAirlines(it models.Itinerary, airlines []string) bool {
	if len(airlines) == 0 {
		return true
	}
	for _, a := range airlines {
		if strings.EqualFold(a, "all") {
			return true
		}
	}

	name := strings.ToLower(it.FirstCarrierName())
	for _, a := range airlines {
		if strings.Contains(name, strings.ToLower(a)) {
			return true
		}
	}
	return false
}

// localHour extracts the 0-23 hour component of an itinerary timestamp. A
// timestamp that does not parse opts out of the hour predicates instead of
// excluding the itinerary.
func localHour(timestamp string) (int, bool) {
	t, err := format.ParseTimestamp(timestamp)
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}

// Sort orders itineraries by the given key without disturbing the input
// slice. Equal elements keep their relative order.
func Sort(itineraries []models.Itinerary, sortBy string) []models.Itinerary {
	sorted := make([]models.Itinerary, len(itineraries))
	copy(sorted, itineraries)

	switch sortBy {
	case models.SortCheapest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.Raw < sorted[j].Price.Raw
		})

	case models.SortFastest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return outboundMinutes(sorted[i]) < outboundMinutes(sorted[j])
		})

	default:
		// "best" and anything unrecognized.
		sort.SliceStable(sorted, func(i, j int) bool {
			return ranking.BestScore(sorted[i]) < ranking.BestScore(sorted[j])
		})
	}

	return sorted
}

func outboundMinutes(it models.Itinerary) int {
	if len(it.Legs) == 0 {
		return 0
	}
	return it.Legs[0].DurationInMinutes
}
