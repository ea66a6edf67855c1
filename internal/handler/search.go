package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Mahesh-gd/google-flights-demo/internal/cache"
	"github.com/Mahesh-gd/google-flights-demo/internal/filter"
	"github.com/Mahesh-gd/google-flights-demo/internal/models"
	"github.com/Mahesh-gd/google-flights-demo/internal/search"
)

// Searcher is what the handlers need from the orchestrator.
type Searcher interface {
	Search(ctx context.Context, criteria models.SearchCriteria) search.Result
}

type SearchHandler struct {
	searcher Searcher
	cache    cache.Cache
}

func NewSearchHandler(searcher Searcher, c cache.Cache) *SearchHandler {
	return &SearchHandler{
		searcher: searcher,
		cache:    c,
	}
}

// Search is the stateless endpoint: full criteria and filter state in one
// body, derived result list out.
func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if cached, found := h.cache.Get(ctx, req.SearchCriteria); found {
		derived := filter.Apply(cached, req.Filters, req.SortBy)
		return c.JSON(http.StatusOK, models.SearchResponse{
			SearchCriteria: req.SearchCriteria,
			Metadata: models.SearchMetadata{
				TotalResults: len(derived),
				SearchTimeMs: time.Since(startTime).Milliseconds(),
				CacheHit:     true,
			},
			Itineraries: models.ItineraryViews(derived),
		})
	}

	result := h.searcher.Search(ctx, req.SearchCriteria)
	if !result.UsedFallback() {
		_ = h.cache.Set(ctx, req.SearchCriteria, result.Itineraries)
	}

	derived := filter.Apply(result.Itineraries, req.Filters, req.SortBy)

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchCriteria: req.SearchCriteria,
		Metadata:       buildMetadata(result, len(derived), startTime),
		Itineraries:    models.ItineraryViews(derived),
	})
}

func buildMetadata(result search.Result, total int, startTime time.Time) models.SearchMetadata {
	meta := models.SearchMetadata{
		TotalResults:      total,
		UsingFallbackData: result.UsedFallback(),
		SearchTimeMs:      time.Since(startTime).Milliseconds(),
	}
	if result.FallbackCause != nil {
		meta.FallbackCause = result.FallbackCause.Error()
	}
	return meta
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
