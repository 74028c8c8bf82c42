package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

type GoogleMapsProvider struct {
	client *maps.Client
	region string
}

func NewGoogleMapsProvider(apiKey, region string, opts ...maps.ClientOption) (*GoogleMapsProvider, error) {
	opts = append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return &GoogleMapsProvider{
		client: client,
		region: region,
	}, nil
}

func (g *GoogleMapsProvider) Geocode(ctx context.Context, address string) (*GeocodeResponse, error) {
	if strings.TrimSpace(address) == "" {
		return nil, ErrEmptyAddress
	}

	req := &maps.GeocodingRequest{
		Address: address,
		Region:  g.region,
	}

	resp, err := g.client.Geocode(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("geocoding failed: %w", err)
	}
	if len(resp) == 0 {
		return nil, ErrNoResults
	}

	results := make([]GeocodeResult, len(resp))
	for i, result := range resp {
		results[i] = GeocodeResult{
			PlaceID: result.PlaceID,
			Address: result.FormattedAddress,
			Coordinates: Location{
				Latitude:  result.Geometry.Location.Lat,
				Longitude: result.Geometry.Location.Lng,
			},
			Types: result.Types,
		}
	}

	return &GeocodeResponse{Results: results}, nil
}

func (g *GoogleMapsProvider) GetDirections(ctx context.Context, request *DirectionsRequest) (*DirectionsResponse, error) {
	if err := validateDirections(request); err != nil {
		return nil, err
	}

	mode := maps.TravelModeDriving
	if request.Mode != "" {
		mode = maps.Mode(request.Mode)
	}

	region := request.Region
	if region == "" {
		region = g.region
	}

	req := &maps.DirectionsRequest{
		Origin:      request.Origin,
		Destination: request.Destination,
		Mode:        mode,
		Region:      region,
	}

	resp, _, err := g.client.Directions(ctx, req)
	if err != nil {
		if strings.Contains(err.Error(), "ZERO_RESULTS") || strings.Contains(err.Error(), "NOT_FOUND") {
			return nil, ErrNoRoute
		}
		return nil, fmt.Errorf("directions request failed: %w", err)
	}

	routes := make([]Route, 0, len(resp))
	for _, route := range resp {
		if len(route.Legs) == 0 {
			continue
		}
		leg := route.Legs[0]

		routes = append(routes, Route{
			Summary: route.Summary,
			Distance: Distance{
				Text:  leg.Distance.HumanReadable,
				Value: float64(leg.Distance.Meters),
			},
			Duration: Duration{
				Text:  humanDuration(leg.Duration),
				Value: int(leg.Duration.Seconds()),
			},
			Polyline:     route.OverviewPolyline.Points,
			StartAddress: leg.StartAddress,
			EndAddress:   leg.EndAddress,
		})
	}

	if len(routes) == 0 {
		return nil, ErrNoRoute
	}

	return &DirectionsResponse{Routes: routes}, nil
}

func (g *GoogleMapsProvider) Autocomplete(ctx context.Context, request *AutocompleteRequest) (*AutocompleteResponse, error) {
	if strings.TrimSpace(request.Input) == "" {
		return &AutocompleteResponse{Predictions: []Prediction{}}, nil
	}

	country := request.Country
	if country == "" {
		country = g.region
	}

	req := &maps.PlaceAutocompleteRequest{
		Input: request.Input,
	}
	if country != "" {
		req.Components = map[maps.Component][]string{
			maps.ComponentCountry: {country},
		}
	}

	resp, err := g.client.PlaceAutocomplete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("place autocomplete failed: %w", err)
	}

	predictions := make([]Prediction, len(resp.Predictions))
	for i, p := range resp.Predictions {
		predictions[i] = Prediction{
			PlaceID:     p.PlaceID,
			Description: p.Description,
		}
	}

	return &AutocompleteResponse{Predictions: predictions}, nil
}
