package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Mahesh-gd/google-flights-demo/internal/filter"
	"github.com/Mahesh-gd/google-flights-demo/internal/models"
	"github.com/Mahesh-gd/google-flights-demo/internal/session"
)

// SessionHandler renders criteria state and issues mutation and fetch calls,
// the server-side stand-in for the search page.
type SessionHandler struct {
	sessions *session.Store
	searcher Searcher
}

func NewSessionHandler(sessions *session.Store, searcher Searcher) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		searcher: searcher,
	}
}

type updateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type sessionSearchRequest struct {
	Filters *models.FilterSpec `json:"filters,omitempty"`
}

type sessionCreateResponse struct {
	SessionID string                `json:"session_id"`
	Criteria  models.SearchCriteria `json:"criteria"`
	Result    models.SearchResponse `json:"result"`
}

// Create opens a session with the default criteria and fires the initial
// search, mirroring the page firing one search on first mount.
func (h *SessionHandler) Create(c echo.Context) error {
	startTime := time.Now()
	s := h.sessions.Create()
	criteria := s.Criteria()

	gen := s.BeginSearch()
	result := h.searcher.Search(c.Request().Context(), criteria)
	s.CompleteSearch(gen, result.Itineraries, result.UsedFallback())

	derived := filter.Apply(result.Itineraries, nil, criteria.SortBy)

	return c.JSON(http.StatusCreated, sessionCreateResponse{
		SessionID: s.ID,
		Criteria:  criteria,
		Result: models.SearchResponse{
			SearchCriteria: criteria,
			Metadata:       buildMetadata(result, len(derived), startTime),
			Itineraries:    models.ItineraryViews(derived),
		},
	})
}

func (h *SessionHandler) Get(c echo.Context) error {
	s, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		return sessionNotFound(c)
	}

	itineraries, fallback := s.LastResult()
	criteria := s.Criteria()

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchCriteria: criteria,
		Metadata: models.SearchMetadata{
			TotalResults:      len(itineraries),
			UsingFallbackData: fallback,
		},
		Itineraries: models.ItineraryViews(itineraries),
	})
}

// UpdateCriteria sets exactly one criteria field.
func (h *SessionHandler) UpdateCriteria(c echo.Context) error {
	s, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		return sessionNotFound(c)
	}

	var req updateFieldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := s.UpdateField(req.Field, req.Value); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error() + ": " + req.Field,
			Code:    http.StatusBadRequest,
		})
	}

	return c.JSON(http.StatusOK, models.SessionResponse{
		SessionID: s.ID,
		Criteria:  s.Criteria(),
	})
}

// Swap exchanges the session's origin and destination.
func (h *SessionHandler) Swap(c echo.Context) error {
	s, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		return sessionNotFound(c)
	}

	s.Swap()

	return c.JSON(http.StatusOK, models.SessionResponse{
		SessionID: s.ID,
		Criteria:  s.Criteria(),
	})
}

// Search re-runs the fetch with the session's current criteria. When
// searches overlap, the generation token keeps the newest outcome: a slower,
// older response is returned to its caller but not stored.
func (h *SessionHandler) Search(c echo.Context) error {
	startTime := time.Now()
	s, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		return sessionNotFound(c)
	}

	var req sessionSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	criteria := s.Criteria()
	gen := s.BeginSearch()
	result := h.searcher.Search(c.Request().Context(), criteria)
	s.CompleteSearch(gen, result.Itineraries, result.UsedFallback())

	derived := filter.Apply(result.Itineraries, req.Filters, criteria.SortBy)

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchCriteria: criteria,
		Metadata:       buildMetadata(result, len(derived), startTime),
		Itineraries:    models.ItineraryViews(derived),
	})
}

func (h *SessionHandler) Delete(c echo.Context) error {
	h.sessions.Delete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func sessionNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "session_not_found",
		Message: "No session with the given id",
		Code:    http.StatusNotFound,
	})
}
