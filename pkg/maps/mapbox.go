package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type MapboxProvider struct {
	accessToken string
	httpClient  *http.Client
	baseURL     string
	country     string
}

func NewMapboxProvider(accessToken, baseURL, country string) *MapboxProvider {
	if baseURL == "" {
		baseURL = "https://api.mapbox.com"
	}
	return &MapboxProvider{
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     strings.TrimRight(baseURL, "/"),
		country:     country,
	}
}

type mapboxGeocodeResponse struct {
	Features []struct {
		ID        string    `json:"id"`
		PlaceName string    `json:"place_name"`
		PlaceType []string  `json:"place_type"`
		Center    []float64 `json:"center"`
	} `json:"features"`
}

func (m *MapboxProvider) Geocode(ctx context.Context, address string) (*GeocodeResponse, error) {
	if strings.TrimSpace(address) == "" {
		return nil, ErrEmptyAddress
	}

	var mapboxResp mapboxGeocodeResponse
	if err := m.get(ctx, m.geocodeURL(address, false, 1), &mapboxResp); err != nil {
		return nil, err
	}

	results := make([]GeocodeResult, 0, len(mapboxResp.Features))
	for _, feature := range mapboxResp.Features {
		if len(feature.Center) != 2 {
			continue
		}
		results = append(results, GeocodeResult{
			PlaceID: feature.ID,
			Address: feature.PlaceName,
			Coordinates: Location{
				Latitude:  feature.Center[1],
				Longitude: feature.Center[0],
			},
			Types: feature.PlaceType,
		})
	}

	if len(results) == 0 {
		return nil, ErrNoResults
	}

	return &GeocodeResponse{Results: results}, nil
}

// GetDirections geocodes both addresses and asks for a driving route between
// the best matches.
func (m *MapboxProvider) GetDirections(ctx context.Context, request *DirectionsRequest) (*DirectionsResponse, error) {
	if err := validateDirections(request); err != nil {
		return nil, err
	}

	origin, err := m.Geocode(ctx, request.Origin)
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	destination, err := m.Geocode(ctx, request.Destination)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	from := origin.Results[0]
	to := destination.Results[0]

	profile := "driving"
	if request.Mode == "walking" || request.Mode == "cycling" {
		profile = request.Mode
	}

	coordinates := fmt.Sprintf("%f,%f;%f,%f",
		from.Coordinates.Longitude, from.Coordinates.Latitude,
		to.Coordinates.Longitude, to.Coordinates.Latitude)

	apiURL := fmt.Sprintf("%s/directions/v5/mapbox/%s/%s?geometries=polyline&overview=full&access_token=%s",
		m.baseURL, profile, coordinates, url.QueryEscape(m.accessToken))

	var mapboxResp struct {
		Code   string `json:"code"`
		Routes []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
			Geometry string  `json:"geometry"`
		} `json:"routes"`
	}
	if err := m.get(ctx, apiURL, &mapboxResp); err != nil {
		return nil, err
	}

	if mapboxResp.Code != "" && mapboxResp.Code != "Ok" {
		if mapboxResp.Code == "NoRoute" {
			return nil, ErrNoRoute
		}
		return nil, fmt.Errorf("Mapbox directions error: %s", mapboxResp.Code)
	}
	if len(mapboxResp.Routes) == 0 {
		return nil, ErrNoRoute
	}

	routes := make([]Route, len(mapboxResp.Routes))
	for i, route := range mapboxResp.Routes {
		duration := time.Duration(route.Duration * float64(time.Second))
		routes[i] = Route{
			Distance: Distance{
				Text:  humanDistance(route.Distance),
				Value: route.Distance,
			},
			Duration: Duration{
				Text:  humanDuration(duration),
				Value: int(route.Duration),
			},
			Polyline:     route.Geometry,
			StartAddress: from.Address,
			EndAddress:   to.Address,
		}
	}

	return &DirectionsResponse{Routes: routes}, nil
}

func (m *MapboxProvider) Autocomplete(ctx context.Context, request *AutocompleteRequest) (*AutocompleteResponse, error) {
	if strings.TrimSpace(request.Input) == "" {
		return &AutocompleteResponse{Predictions: []Prediction{}}, nil
	}

	var mapboxResp mapboxGeocodeResponse
	if err := m.get(ctx, m.geocodeURL(request.Input, true, 5), &mapboxResp); err != nil {
		return nil, err
	}

	predictions := make([]Prediction, len(mapboxResp.Features))
	for i, feature := range mapboxResp.Features {
		predictions[i] = Prediction{
			PlaceID:     feature.ID,
			Description: feature.PlaceName,
		}
	}

	return &AutocompleteResponse{Predictions: predictions}, nil
}

func (m *MapboxProvider) geocodeURL(query string, autocomplete bool, limit int) string {
	params := url.Values{}
	params.Set("access_token", m.accessToken)
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("autocomplete", fmt.Sprintf("%t", autocomplete))
	if m.country != "" {
		params.Set("country", m.country)
	}

	return fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		m.baseURL, url.PathEscape(query), params.Encode())
}

func (m *MapboxProvider) get(ctx context.Context, apiURL string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Mapbox API error: %s", string(body))
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
