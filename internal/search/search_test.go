package search

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Mahesh-gd/google-flights-demo/internal/models"
	"github.com/Mahesh-gd/google-flights-demo/internal/providers"
)

type stubProvider struct {
	itineraries []models.Itinerary
	err         error
	calls       int
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Itinerary, error) {
	p.calls++
	return p.itineraries, p.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testCriteria() models.SearchCriteria {
	return models.DefaultCriteria()
}

func TestSearchAdoptsLiveResults(t *testing.T) {
	live := []models.Itinerary{{ID: "live-1"}, {ID: "live-2"}}
	s := NewSearcher(&stubProvider{itineraries: live}, Config{Logger: quietLogger()})

	got := s.Search(context.Background(), testCriteria())

	if got.UsedFallback() {
		t.Fatal("live result marked as fallback")
	}
	if got.Source != SourceLive {
		t.Fatalf("source = %q, want live", got.Source)
	}
	if got.FallbackCause != nil {
		t.Fatalf("fallback cause on a live result: %v", got.FallbackCause)
	}
	if len(got.Itineraries) != 2 || got.Itineraries[0].ID != "live-1" {
		t.Fatalf("itineraries = %+v", got.Itineraries)
	}
}

func TestSearchFallsBackOnProviderError(t *testing.T) {
	cause := providers.NewProviderError("stub", errors.New("connection refused"))
	s := NewSearcher(&stubProvider{err: cause}, Config{Logger: quietLogger()})

	got := s.Search(context.Background(), testCriteria())

	if !got.UsedFallback() {
		t.Fatal("failed search did not degrade to sample data")
	}
	if got.Source != SourceSample {
		t.Fatalf("source = %q, want sample", got.Source)
	}
	if !errors.Is(got.FallbackCause, cause) {
		t.Fatalf("fallback cause = %v, want the provider error", got.FallbackCause)
	}

	sample, err := providers.SampleItineraries()
	if err != nil {
		t.Fatalf("sample dataset: %v", err)
	}
	if len(got.Itineraries) != len(sample) {
		t.Fatalf("fallback list has %d itineraries, want %d", len(got.Itineraries), len(sample))
	}
	for i := range sample {
		if got.Itineraries[i].ID != sample[i].ID {
			t.Fatalf("fallback itinerary %d = %s, want %s", i, got.Itineraries[i].ID, sample[i].ID)
		}
	}
}

func TestSearchFallsBackOnEmptyResult(t *testing.T) {
	// A provider returning no itineraries and no error is still a degraded
	// search from the caller's point of view.
	s := NewSearcher(&stubProvider{err: providers.ErrNoResults}, Config{Logger: quietLogger()})

	got := s.Search(context.Background(), testCriteria())
	if !got.UsedFallback() {
		t.Fatal("empty result did not degrade to sample data")
	}
	if !errors.Is(got.FallbackCause, providers.ErrNoResults) {
		t.Fatalf("fallback cause = %v, want ErrNoResults", got.FallbackCause)
	}
}

func TestSearchForcedFailureScenario(t *testing.T) {
	// BLR→JFK round trip with the outbound call forced to fail must resolve
	// to the bundled 7-item list, marked as sample-sourced.
	criteria := models.SearchCriteria{
		TripType:    models.TripRoundTrip,
		Origin:      "BLR",
		Destination: "JFK",
	}
	s := NewSearcher(&stubProvider{err: errors.New("forced failure")}, Config{Logger: quietLogger()})

	got := s.Search(context.Background(), criteria)
	if !got.UsedFallback() {
		t.Fatal("expected fallback provenance")
	}
	if len(got.Itineraries) != 7 {
		t.Fatalf("got %d itineraries, want the 7-item bundled list", len(got.Itineraries))
	}
}

func TestSearchCallsProviderOncePerInvocation(t *testing.T) {
	p := &stubProvider{err: errors.New("down")}
	s := NewSearcher(p, Config{Logger: quietLogger()})

	s.Search(context.Background(), testCriteria())
	if p.calls != 1 {
		t.Fatalf("provider called %d times, want exactly one attempt", p.calls)
	}
}
