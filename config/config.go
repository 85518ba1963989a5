package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs at startup. It is built once
// in app setup and handed to constructors; request handling never reads
// the environment directly.
type Config struct {
	Port        string
	PostgresURI string
	JWTSecret   string

	// DisplayLocation is optional. When set, todo responses carry
	// human-readable due/created strings rendered in this timezone.
	DisplayLocation *time.Location
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		PostgresURI: os.Getenv("POSTGRESQL_URI"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.PostgresURI == "" {
		return nil, errors.New("you must set your 'POSTGRESQL_URI' environmental variable")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("you must set your 'JWT_SECRET' environmental variable")
	}

	if tz := os.Getenv("DISPLAY_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, errors.New("invalid 'DISPLAY_TIMEZONE': " + err.Error())
		}
		cfg.DisplayLocation = loc
	}

	return cfg, nil
}
