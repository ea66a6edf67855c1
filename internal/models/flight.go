package models

type Airport struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayCode string `json:"displayCode"`
	City        string `json:"city"`
}

type Carrier struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoURL       string `json:"logoUrl"`
	OperationType string `json:"operationType"`
}

// Carrier operation types as reported by the provider.
const (
	OperationFullyOperated = "fully_operated"
	OperationCodeshare     = "codeshare"
)

type Carriers struct {
	Marketing []Carrier `json:"marketing"`
}

type Emissions struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
	Change int    `json:"change"`
}

type Price struct {
	Raw       float64 `json:"raw"`
	Formatted string  `json:"formatted"`
}

// Leg is one directional flight segment. Departure and Arrival are ISO-8601
// timestamps local to the respective airport; no timezone conversion is done.
// Stops lists intermediate airport codes and is expected, but not guaranteed,
// to have StopCount entries.
type Leg struct {
	ID                string    `json:"id"`
	Origin            Airport   `json:"origin"`
	Destination       Airport   `json:"destination"`
	DurationInMinutes int       `json:"durationInMinutes"`
	StopCount         int       `json:"stopCount"`
	Departure         string    `json:"departure"`
	Arrival           string    `json:"arrival"`
	Carriers          Carriers  `json:"carriers"`
	Stops             []string  `json:"stops,omitempty"`
	Emissions         Emissions `json:"emissions"`
}

// Itinerary is one bookable offering. Legs index 0 is the outbound segment;
// index 1, when present, is the return. A round-trip itinerary carrying a
// single leg is tolerated and treated as outbound only.
type Itinerary struct {
	ID            string    `json:"id"`
	Price         Price     `json:"price"`
	Legs          []Leg     `json:"legs"`
	RoundTrip     bool      `json:"roundTrip"`
	TotalDuration int       `json:"totalDuration"`
	Emissions     Emissions `json:"emissions"`
}

// FirstCarrierName returns the outbound leg's first marketing carrier name,
// or "" when the itinerary has no usable leg.
func (it Itinerary) FirstCarrierName() string {
	if len(it.Legs) == 0 || len(it.Legs[0].Carriers.Marketing) == 0 {
		return ""
	}
	return it.Legs[0].Carriers.Marketing[0].Name
}
