package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Mahesh-gd/google-flights-demo/internal/models"
	"github.com/Mahesh-gd/google-flights-demo/pkg/currency"
)

// Fixed entity ids and market constants the upstream search is pinned to.
const (
	originEntityID      = "95565054"
	destinationEntityID = "27537542"
	requestCurrency     = "INR"
	requestMarket       = "en-IN"
	requestCountry      = "IN"
)

type SkyScannerConfig struct {
	BaseURL string
	APIKey  string
	APIHost string
	Timeout time.Duration
	Client  *http.Client
}

func DefaultSkyScannerConfig() SkyScannerConfig {
	return SkyScannerConfig{
		BaseURL: "https://sky-scrapper.p.rapidapi.com/api/v1/flights/searchFlights",
		APIHost: "sky-scrapper.p.rapidapi.com",
		Timeout: 10 * time.Second,
	}
}

// SkyScannerProvider performs the single outbound search request against the
// sky-scrapper RapidAPI endpoint.
type SkyScannerProvider struct {
	config SkyScannerConfig
	client *http.Client
}

func NewSkyScannerProvider(cfg SkyScannerConfig) *SkyScannerProvider {
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &SkyScannerProvider{config: cfg, client: client}
}

func (p *SkyScannerProvider) Name() string {
	return "sky-scrapper"
}

type searchFlightsResponse struct {
	Status bool `json:"status"`
	Data   struct {
		Context struct {
			Status       string `json:"status"`
			TotalResults int    `json:"totalResults"`
		} `json:"context"`
		Itineraries []models.Itinerary `json:"itineraries"`
	} `json:"data"`
}

// Search issues one GET and returns the decoded itinerary list. A non-true
// payload status and an empty itinerary list are both errors; the caller
// decides what to degrade to.
func (p *SkyScannerProvider) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Itinerary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.buildURL(criteria), nil)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}
	req.Header.Set("X-RapidAPI-Key", p.config.APIKey)
	req.Header.Set("X-RapidAPI-Host", p.config.APIHost)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewProviderError(p.Name(), fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload searchFlightsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, NewProviderError(p.Name(), fmt.Errorf("decode response: %w", err))
	}

	if !payload.Status {
		return nil, NewProviderError(p.Name(), fmt.Errorf("provider status %q", payload.Data.Context.Status))
	}
	if len(payload.Data.Itineraries) == 0 {
		return nil, NewProviderError(p.Name(), ErrNoResults)
	}

	return normalize(payload.Data.Itineraries), nil
}

// normalize fills the display price for itineraries the provider returned
// with a raw amount only.
func normalize(itineraries []models.Itinerary) []models.Itinerary {
	for i := range itineraries {
		if itineraries[i].Price.Formatted == "" {
			itineraries[i].Price.Formatted = currency.FormatINR(itineraries[i].Price.Raw)
		}
	}
	return itineraries
}

func (p *SkyScannerProvider) buildURL(criteria models.SearchCriteria) string {
	returnDate := ""
	if criteria.TripType == models.TripRoundTrip {
		returnDate = criteria.ReturnDate
	}

	params := url.Values{}
	params.Set("originSkyId", criteria.Origin)
	params.Set("destinationSkyId", criteria.Destination)
	params.Set("originEntityId", originEntityID)
	params.Set("destinationEntityId", destinationEntityID)
	params.Set("date", criteria.DepartDate)
	params.Set("returnDate", returnDate)
	params.Set("cabinClass", criteria.TravelClass)
	params.Set("adults", criteria.Passengers)
	params.Set("sortBy", criteria.SortBy)
	params.Set("currency", requestCurrency)
	params.Set("market", requestMarket)
	params.Set("countryCode", requestCountry)

	return p.config.BaseURL + "?" + params.Encode()
}
