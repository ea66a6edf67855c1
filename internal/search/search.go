// Package search is the result-fetch orchestrator: one provider attempt per
// search, degrading to the bundled sample dataset on any failure.
package search

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Mahesh-gd/google-flights-demo/internal/models"
	"github.com/Mahesh-gd/google-flights-demo/internal/providers"
	"github.com/Mahesh-gd/google-flights-demo/internal/ratelimit"
)

// Source says where a result's itineraries came from.
type Source string

const (
	SourceLive   Source = "live"
	SourceSample Source = "sample"
)

// Result is a search outcome. Provenance is part of the type: a degraded
// result keeps Source == SourceSample and the error that caused the
// degradation, instead of hiding both behind a flag.
type Result struct {
	Itineraries   []models.Itinerary
	Source        Source
	FallbackCause error
}

// UsedFallback reports whether the itineraries are the bundled sample data.
func (r Result) UsedFallback() bool {
	return r.Source == SourceSample
}

type Config struct {
	RateLimiter *ratelimit.UpstreamLimiter
	Logger      *logrus.Logger
}

// Searcher wraps one provider. Transport failures, bad statuses, malformed
// bodies and empty result lists all collapse into the same degraded path;
// search never surfaces an error to its caller.
type Searcher struct {
	provider providers.Provider
	limiter  *ratelimit.UpstreamLimiter
	log      *logrus.Logger
}

func NewSearcher(provider providers.Provider, cfg Config) *Searcher {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Searcher{
		provider: provider,
		limiter:  cfg.RateLimiter,
		log:      log,
	}
}

// Search performs a single fetch attempt for the given criteria. Concurrent
// calls run independently; the session layer decides which outcome to keep.
func (s *Searcher) Search(ctx context.Context, criteria models.SearchCriteria) Result {
	itineraries, err := s.fetch(ctx, criteria)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"provider":    s.provider.Name(),
			"origin":      criteria.Origin,
			"destination": criteria.Destination,
		}).WithError(err).Warn("provider search failed, serving sample data")
		return s.fallback(err)
	}

	return Result{Itineraries: itineraries, Source: SourceLive}
}

func (s *Searcher) fetch(ctx context.Context, criteria models.SearchCriteria) ([]models.Itinerary, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx, s.provider.Name()); err != nil {
			return nil, err
		}
	}
	return s.provider.Search(ctx, criteria)
}

func (s *Searcher) fallback(cause error) Result {
	itineraries, err := providers.SampleItineraries()
	if err != nil {
		// The embedded dataset failing to decode means a broken build;
		// surface an empty degraded result rather than panicking.
		s.log.WithError(err).Error("sample dataset is unreadable")
		itineraries = nil
	}
	return Result{
		Itineraries:   itineraries,
		Source:        SourceSample,
		FallbackCause: cause,
	}
}
