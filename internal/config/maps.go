package config

type MapsConfig struct {
	Provider   string            `yaml:"provider"`
	Region     string            `yaml:"region"`
	GoogleMaps *GoogleMapsConfig `yaml:"google_maps"`
	Mapbox     *MapboxConfig     `yaml:"mapbox"`
}

type GoogleMapsConfig struct {
	APIKey string `yaml:"api_key"`
}

type MapboxConfig struct {
	AccessToken string `yaml:"access_token"`
	BaseURL     string `yaml:"base_url"`
}

func loadMapsConfig() *MapsConfig {
	return &MapsConfig{
		Provider: getEnv("MAPS_PROVIDER", "google"),
		Region:   getEnv("MAPS_REGION", "lk"),
		GoogleMaps: &GoogleMapsConfig{
			APIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		},
		Mapbox: &MapboxConfig{
			AccessToken: getEnv("MAPBOX_ACCESS_TOKEN", ""),
			BaseURL:     getEnv("MAPBOX_BASE_URL", "https://api.mapbox.com"),
		},
	}
}
