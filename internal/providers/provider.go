package providers

import (
	"context"
	"errors"

	"github.com/Mahesh-gd/google-flights-demo/internal/models"
)

type Provider interface {
	Name() string
	Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Itinerary, error)
}

// ErrNoResults marks a response that decoded fine but carried no itineraries.
// Callers treat it like any other provider failure.
var ErrNoResults = errors.New("no itineraries in provider response")

type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Err:      err,
	}
}
