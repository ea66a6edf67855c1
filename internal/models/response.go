package models

// SearchRequest is the stateless search body: full criteria plus the filter
// state in one payload.
type SearchRequest struct {
	SearchCriteria
	Filters *FilterSpec `json:"filters,omitempty"`
}

func (r *SearchRequest) Validate() error {
	if r.Origin == "" {
		return ErrMissingOrigin
	}
	if r.Destination == "" {
		return ErrMissingDestination
	}
	if r.DepartDate == "" {
		return ErrMissingDepartDate
	}
	r.Normalize()
	return nil
}

type SearchMetadata struct {
	TotalResults      int    `json:"total_results"`
	UsingFallbackData bool   `json:"using_fallback_data"`
	FallbackCause     string `json:"fallback_cause,omitempty"`
	SearchTimeMs      int64  `json:"search_time_ms"`
	CacheHit          bool   `json:"cache_hit"`
}

type SearchResponse struct {
	SearchCriteria SearchCriteria  `json:"search_criteria"`
	Metadata       SearchMetadata  `json:"metadata"`
	Itineraries    []ItineraryView `json:"itineraries"`
}

type SessionResponse struct {
	SessionID string         `json:"session_id"`
	Criteria  SearchCriteria `json:"criteria"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
