package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Mahesh-gd/google-flights-demo/internal/cache"
	"github.com/Mahesh-gd/google-flights-demo/internal/models"
	"github.com/Mahesh-gd/google-flights-demo/internal/search"
)

type stubSearcher struct {
	result search.Result
	calls  int
}

func (s *stubSearcher) Search(ctx context.Context, criteria models.SearchCriteria) search.Result {
	s.calls++
	return s.result
}

type mapCache struct {
	entries map[string][]models.Itinerary
	sets    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]models.Itinerary)}
}

func (c *mapCache) Get(ctx context.Context, criteria models.SearchCriteria) ([]models.Itinerary, bool) {
	itineraries, ok := c.entries[cache.Key(criteria)]
	return itineraries, ok
}

func (c *mapCache) Set(ctx context.Context, criteria models.SearchCriteria, itineraries []models.Itinerary) error {
	c.sets++
	c.entries[cache.Key(criteria)] = itineraries
	return nil
}

func (c *mapCache) Close() error { return nil }

func liveResult(ids ...string) search.Result {
	itineraries := make([]models.Itinerary, len(ids))
	for i, id := range ids {
		itineraries[i] = models.Itinerary{
			ID:    id,
			Price: models.Price{Raw: float64(100000 + i)},
			Legs:  []models.Leg{{DurationInMinutes: 1000, StopCount: 0}},
		}
	}
	return search.Result{Itineraries: itineraries, Source: search.SourceLive}
}

func doSearch(t *testing.T, h *SearchHandler, body string) (*httptest.ResponseRecorder, models.SearchResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/search", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Search(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	var resp models.SearchResponse
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rec, resp
}

const searchBody = `{"tripType":"round-trip","origin":"BLR","destination":"JFK",
	"departDate":"2024-08-09","returnDate":"2024-08-16","passengers":"1",
	"travelClass":"economy","sortBy":"cheapest"}`

func TestSearchLivePath(t *testing.T) {
	searcher := &stubSearcher{result: liveResult("it-1", "it-2")}
	c := newMapCache()
	h := NewSearchHandler(searcher, c)

	rec, resp := doSearch(t, h, searchBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if resp.Metadata.UsingFallbackData {
		t.Fatal("live result flagged as fallback")
	}
	if resp.Metadata.TotalResults != 2 || len(resp.Itineraries) != 2 {
		t.Fatalf("got %d itineraries", len(resp.Itineraries))
	}
	if c.sets != 1 {
		t.Fatalf("live result cached %d times, want 1", c.sets)
	}
}

func TestSearchFallbackPathIsNotCached(t *testing.T) {
	searcher := &stubSearcher{result: search.Result{
		Itineraries:   []models.Itinerary{{ID: "sample-1", Legs: []models.Leg{{}}}},
		Source:        search.SourceSample,
		FallbackCause: errors.New("connection refused"),
	}}
	c := newMapCache()
	h := NewSearchHandler(searcher, c)

	rec, resp := doSearch(t, h, searchBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !resp.Metadata.UsingFallbackData {
		t.Fatal("fallback result not flagged")
	}
	if resp.Metadata.FallbackCause == "" {
		t.Fatal("fallback cause missing from metadata")
	}
	if c.sets != 0 {
		t.Fatal("sample data leaked into the cache")
	}
}

func TestSearchCacheHitSkipsProvider(t *testing.T) {
	searcher := &stubSearcher{result: liveResult("fresh")}
	c := newMapCache()
	h := NewSearchHandler(searcher, c)

	criteria := models.SearchCriteria{
		TripType: "round-trip", Origin: "BLR", Destination: "JFK",
		DepartDate: "2024-08-09", ReturnDate: "2024-08-16",
		Passengers: "1", TravelClass: "economy", SortBy: "cheapest",
	}
	cached := liveResult("cached").Itineraries
	if err := c.Set(context.Background(), criteria, cached); err != nil {
		t.Fatalf("seed cache: %v", err)
	}
	c.sets = 0

	rec, resp := doSearch(t, h, searchBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !resp.Metadata.CacheHit {
		t.Fatal("cache hit not reported")
	}
	if searcher.calls != 0 {
		t.Fatalf("provider consulted %d times on a cache hit", searcher.calls)
	}
	if len(resp.Itineraries) != 1 || resp.Itineraries[0].ID != "cached" {
		t.Fatalf("itineraries = %+v", resp.Itineraries)
	}
}

func TestSearchValidation(t *testing.T) {
	h := NewSearchHandler(&stubSearcher{result: liveResult()}, newMapCache())

	tests := []struct {
		name string
		body string
	}{
		{"missing origin", `{"destination":"JFK","departDate":"2024-08-09"}`},
		{"missing destination", `{"origin":"BLR","departDate":"2024-08-09"}`},
		{"missing depart date", `{"origin":"BLR","destination":"JFK"}`},
		{"malformed json", `{"origin":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := doSearch(t, h, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestSearchAppliesFiltersAndSort(t *testing.T) {
	result := search.Result{Source: search.SourceLive, Itineraries: []models.Itinerary{
		{ID: "pricey", Price: models.Price{Raw: 150000}, Legs: []models.Leg{{StopCount: 0, DurationInMinutes: 900}}},
		{ID: "cheap", Price: models.Price{Raw: 90000}, Legs: []models.Leg{{StopCount: 0, DurationInMinutes: 1000}}},
		{ID: "stops", Price: models.Price{Raw: 80000}, Legs: []models.Leg{{StopCount: 2, DurationInMinutes: 1200}}},
	}}
	h := NewSearchHandler(&stubSearcher{result: result}, newMapCache())

	body := `{"origin":"BLR","destination":"JFK","departDate":"2024-08-09","sortBy":"cheapest",
		"filters":{"stops":"nonstop"}}`
	rec, resp := doSearch(t, h, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(resp.Itineraries) != 2 {
		t.Fatalf("got %d itineraries, want 2 nonstop", len(resp.Itineraries))
	}
	if resp.Itineraries[0].ID != "cheap" || resp.Itineraries[1].ID != "pricey" {
		t.Fatalf("order = %s, %s", resp.Itineraries[0].ID, resp.Itineraries[1].ID)
	}
}

func TestHealthHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	if err := HealthHandler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
