package maps

import "fmt"

// NewProvider picks the implementation named by provider ("google" or "mapbox").
func NewProvider(provider, googleAPIKey, mapboxToken, mapboxBaseURL, region string) (MapsProvider, error) {
	switch provider {
	case "", "google":
		return NewGoogleMapsProvider(googleAPIKey, region)
	case "mapbox":
		return NewMapboxProvider(mapboxToken, mapboxBaseURL, region), nil
	default:
		return nil, fmt.Errorf("unknown maps provider %q", provider)
	}
}
