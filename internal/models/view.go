package models

import "github.com/Mahesh-gd/google-flights-demo/pkg/format"

// LegDisplay is the pre-rendered card copy for an outbound leg. The long and
// short duration forms serve different views and stay distinct.
type LegDisplay struct {
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	DepartureDate string `json:"departureDate"`
	Duration      string `json:"duration"`
	DurationShort string `json:"durationShort"`
	Stops         string `json:"stops"`
}

// ItineraryView is an itinerary plus its display strings.
type ItineraryView struct {
	Itinerary
	Display LegDisplay `json:"display"`
}

// NewItineraryView renders the display block from the outbound leg. An
// itinerary without legs gets an empty display block.
func NewItineraryView(it Itinerary) ItineraryView {
	view := ItineraryView{Itinerary: it}
	if len(it.Legs) == 0 {
		return view
	}

	leg := it.Legs[0]
	view.Display = LegDisplay{
		DepartureTime: format.Time(leg.Departure),
		ArrivalTime:   format.Time(leg.Arrival),
		DepartureDate: format.Date(leg.Departure),
		Duration:      format.Duration(leg.DurationInMinutes),
		DurationShort: format.DurationShort(leg.DurationInMinutes),
		Stops:         format.StopLabel(leg.StopCount),
	}
	return view
}

// ItineraryViews maps a derived result list to its view form, preserving
// order.
func ItineraryViews(itineraries []Itinerary) []ItineraryView {
	views := make([]ItineraryView, len(itineraries))
	for i, it := range itineraries {
		views[i] = NewItineraryView(it)
	}
	return views
}
