package providers

import (
	"encoding/json"

	"github.com/Mahesh-gd/google-flights-demo/internal/models"
	"github.com/Mahesh-gd/google-flights-demo/internal/providers/data"
)

type sampleDataset struct {
	Itineraries []models.Itinerary `json:"itineraries"`
}

// SampleItineraries decodes the bundled fallback dataset. Every call returns
// a fresh slice so callers can hand it around without aliasing the embedded
// copy.
func SampleItineraries() ([]models.Itinerary, error) {
	var ds sampleDataset
	if err := json.Unmarshal(data.SampleItineraries, &ds); err != nil {
		return nil, err
	}
	return ds.Itineraries, nil
}
