package config

import (
	"errors"
	"os"
)

// Config is the process-wide configuration, read once at startup.
type Config struct {
	Addr          string
	MongoURI      string
	DatabaseName  string
	JWTSecret     []byte
	PublicBaseURL string
	Env           string
}

// Load reads configuration from the environment. A missing JWT_SECRET is a
// deployment misconfiguration and fails startup; it is never defaulted.
func Load() (*Config, error) {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		return nil, errors.New("config: MONGODB_URI is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}

	port := getenv("PORT", "3000")

	return &Config{
		Addr:          ":" + port,
		MongoURI:      mongoURI,
		DatabaseName:  getenv("DATABASE_NAME", "blog"),
		JWTSecret:     []byte(secret),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:"+port),
		Env:           getenv("ENV", "development"),
	}, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
