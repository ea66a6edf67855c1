// Package data bundles the sample itinerary dataset served whenever the live
// provider call fails or comes back empty.
package data

import _ "embed"

//go:embed sample_itineraries.json
var SampleItineraries []byte
