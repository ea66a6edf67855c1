// Package session owns per-session search-criteria state: one mutable
// criteria record per page session, addressed by a generated id.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Mahesh-gd/google-flights-demo/internal/models"
)

// Criteria field names accepted by UpdateField.
const (
	FieldTripType    = "tripType"
	FieldOrigin      = "origin"
	FieldDestination = "destination"
	FieldDepartDate  = "departDate"
	FieldReturnDate  = "returnDate"
	FieldPassengers  = "passengers"
	FieldTravelClass = "travelClass"
	FieldSortBy      = "sortBy"
)

// Session holds one user's criteria plus the last search outcome. The result
// generation counter discards a stale response when searches overlap: the
// original UI let whichever search resolved last win.
type Session struct {
	ID string

	mu       sync.Mutex
	criteria models.SearchCriteria
	result   []models.Itinerary
	fallback bool
	gen      uint64
}

func newSession() *Session {
	return &Session{
		ID:       uuid.NewString(),
		criteria: models.DefaultCriteria(),
	}
}

// Criteria returns a snapshot of the current criteria.
func (s *Session) Criteria() models.SearchCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// UpdateField sets exactly one named criteria field, leaving every other
// field untouched. Values are not validated here.
func (s *Session) UpdateField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case FieldTripType:
		s.criteria.TripType = value
	case FieldOrigin:
		s.criteria.Origin = value
	case FieldDestination:
		s.criteria.Destination = value
	case FieldDepartDate:
		s.criteria.DepartDate = value
	case FieldReturnDate:
		s.criteria.ReturnDate = value
	case FieldPassengers:
		s.criteria.Passengers = value
	case FieldTravelClass:
		s.criteria.TravelClass = value
	case FieldSortBy:
		s.criteria.SortBy = value
	default:
		return models.ErrUnknownField
	}
	return nil
}

// Swap exchanges origin and destination and nothing else.
func (s *Session) Swap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Origin, s.criteria.Destination = s.criteria.Destination, s.criteria.Origin
}

// BeginSearch stamps a new search generation and returns its token.
func (s *Session) BeginSearch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// CompleteSearch stores a search outcome unless a newer search has begun
// since gen was issued. It reports whether the outcome was kept.
func (s *Session) CompleteSearch(gen uint64, itineraries []models.Itinerary, fallback bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.result = itineraries
	s.fallback = fallback
	return true
}

// LastResult returns the most recent stored search outcome.
func (s *Session) LastResult() (itineraries []models.Itinerary, fallback bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.fallback
}

// Store is the in-memory session registry. Sessions live for the process
// lifetime; there is no persistence across restarts.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a fresh session seeded with the default criteria.
func (st *Store) Create() *Session {
	s := newSession()
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get looks a session up by id.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	return s, ok
}

// Delete removes a session; deleting an unknown id is a no-op.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
