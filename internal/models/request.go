package models

// Trip types.
const (
	TripRoundTrip = "round-trip"
	TripOneWay    = "one-way"
)

// Sort keys. Any unrecognized key sorts as SortBest.
const (
	SortBest     = "best"
	SortCheapest = "cheapest"
	SortFastest  = "fastest"
)

// SearchCriteria is the user's current query. It is created with defaults at
// session start, mutated field by field on user input, and read (never
// mutated) at search time. Passengers stays a string because that is how the
// form and the provider query carry it.
type SearchCriteria struct {
	TripType    string `json:"tripType"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DepartDate  string `json:"departDate"`
	ReturnDate  string `json:"returnDate"`
	Passengers  string `json:"passengers"`
	TravelClass string `json:"travelClass"`
	SortBy      string `json:"sortBy"`
}

// DefaultCriteria returns the criteria a fresh session starts with.
func DefaultCriteria() SearchCriteria {
	return SearchCriteria{
		TripType:    TripRoundTrip,
		Origin:      "BLR",
		Destination: "JFK",
		DepartDate:  "2024-08-09",
		ReturnDate:  "2024-08-16",
		Passengers:  "1",
		TravelClass: "economy",
		SortBy:      SortBest,
	}
}

// Normalize fills blank fields with their defaults. Intentionally no
// validation beyond that: identical origin/destination, past dates and empty
// airports are all accepted here.
func (c *SearchCriteria) Normalize() {
	if c.TripType == "" {
		c.TripType = TripRoundTrip
	}
	if c.Passengers == "" {
		c.Passengers = "1"
	}
	if c.TravelClass == "" {
		c.TravelClass = "economy"
	}
	if c.SortBy == "" {
		c.SortBy = SortBest
	}
}

// Stop-count ceilings for FilterSpec.Stops.
const (
	StopsAny     = "any"
	StopsNonstop = "nonstop"
	StopsOneStop = "1stop"
	StopsTwoStop = "2stops"
)

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type HourRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterSpec is the result-list filter state. Nil pointer fields mean "no
// restriction". PriceRange.Min and the hour range Min values are carried for
// the range sliders but only the ceilings are enforced.
type FilterSpec struct {
	Stops              string      `json:"stops,omitempty"`
	Airlines           []string    `json:"airlines,omitempty"`
	PriceRange         *PriceRange `json:"priceRange,omitempty"`
	MaxDuration        *int        `json:"maxDuration,omitempty"`
	DepartureTimeRange *HourRange  `json:"departureTimeRange,omitempty"`
	ArrivalTimeRange   *HourRange  `json:"arrivalTimeRange,omitempty"`
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin      ValidationError = "origin is required"
	ErrMissingDestination ValidationError = "destination is required"
	ErrMissingDepartDate  ValidationError = "departDate is required"
	ErrUnknownField       ValidationError = "unknown criteria field"
)
