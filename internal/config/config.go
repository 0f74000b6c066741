package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	// Addr is the listen address, built from PORT (default 4000).
	Addr string
	// DatabaseURL selects the Postgres catalog repository when set;
	// empty means the in-memory seed catalog.
	DatabaseURL string
}

// Load reads configuration from environment variables.
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	return Config{
		Addr:        ":" + port,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}
