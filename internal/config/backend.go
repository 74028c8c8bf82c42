package config

import "time"

type BackendConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

func loadBackendConfig() *BackendConfig {
	return &BackendConfig{
		BaseURL:   getEnv("BACKEND_BASE_URL", "http://localhost:8080"),
		Timeout:   getEnvAsDuration("BACKEND_TIMEOUT", 15*time.Second),
		UserAgent: getEnv("BACKEND_USER_AGENT", "megacitycab-portal/1.0"),
	}
}
