package config

// FareConfig holds the booking fare formula inputs.
type FareConfig struct {
	BaseFare         float64 `yaml:"base_fare"`
	DefaultRatePerKm float64 `yaml:"default_rate_per_km"`
}

func loadFareConfig() *FareConfig {
	return &FareConfig{
		BaseFare:         getEnvAsFloat64("FARE_BASE", 5.0),
		DefaultRatePerKm: getEnvAsFloat64("FARE_RATE_PER_KM", 2.0),
	}
}
