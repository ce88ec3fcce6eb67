package config

import "os"

type Config struct {
	Addr     string
	DataPath string
	BaseURL  string
}

// Load reads configuration from the environment with local-first defaults:
// the whole deployment is one process and one SQLite file.
func Load() Config {
	return Config{
		Addr:     envOr("ADDR", ":8080"),
		DataPath: envOr("DATA_PATH", "tableside.db"),
		BaseURL:  envOr("BASE_URL", "http://localhost:8080"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
