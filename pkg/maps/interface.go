package maps

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyAddress = errors.New("address is required")
	ErrNoRoute      = errors.New("no route found between the given addresses")
	ErrNoResults    = errors.New("address could not be resolved")
)

type MapsProvider interface {
	Geocode(ctx context.Context, address string) (*GeocodeResponse, error)
	GetDirections(ctx context.Context, request *DirectionsRequest) (*DirectionsResponse, error)
	Autocomplete(ctx context.Context, request *AutocompleteRequest) (*AutocompleteResponse, error)
}

type GeocodeResponse struct {
	Results []GeocodeResult `json:"results"`
}

type GeocodeResult struct {
	PlaceID     string   `json:"place_id"`
	Address     string   `json:"formatted_address"`
	Coordinates Location `json:"geometry"`
	Types       []string `json:"types"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DirectionsRequest takes free-text addresses; providers resolve them.
type DirectionsRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"` // driving, walking, bicycling
	Region      string `json:"region,omitempty"`
}

type DirectionsResponse struct {
	Routes []Route `json:"routes"`
}

type Route struct {
	Summary      string   `json:"summary"`
	Distance     Distance `json:"distance"`
	Duration     Duration `json:"duration"`
	Polyline     string   `json:"overview_polyline"`
	StartAddress string   `json:"start_address"`
	EndAddress   string   `json:"end_address"`
}

type Distance struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"` // in meters
}

type Duration struct {
	Text  string `json:"text"`
	Value int    `json:"value"` // in seconds
}

type AutocompleteRequest struct {
	Input   string `json:"input"`
	Country string `json:"country,omitempty"`
}

type AutocompleteResponse struct {
	Predictions []Prediction `json:"predictions"`
}

type Prediction struct {
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
}

func validateDirections(request *DirectionsRequest) error {
	if request.Origin == "" || request.Destination == "" {
		return ErrEmptyAddress
	}
	return nil
}

// humanDuration renders a duration the way the directions APIs label legs,
// e.g. "1 hour 5 mins".
func humanDuration(d time.Duration) string {
	minutes := int((d + 30*time.Second) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}

	hours := minutes / 60
	minutes %= 60

	unit := func(n int, singular, plural string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, singular)
		}
		return fmt.Sprintf("%d %s", n, plural)
	}

	switch {
	case hours > 0 && minutes > 0:
		return unit(hours, "hour", "hours") + " " + unit(minutes, "min", "mins")
	case hours > 0:
		return unit(hours, "hour", "hours")
	default:
		return unit(minutes, "min", "mins")
	}
}

func humanDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}
