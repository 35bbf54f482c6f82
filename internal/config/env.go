package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server is the backend configuration, read from the environment.
type Server struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	DBPath      string   `env:"DB_PATH" envDefault:"./duelforge.db"`
	FrontendDir string   `env:"FRONTEND_DIR" envDefault:"../frontend"`
	CardDBURL   string   `env:"YGOPRODECK_URL" envDefault:"https://db.ygoprodeck.com/api/v7"`
	BoredAPIURL string   `env:"BORED_API_URL" envDefault:"https://www.boredapi.com/api"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:*"`

	// 0 leaves the transport defaults in place
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`

	ChallengeAttempts   uint          `env:"CHALLENGE_ATTEMPTS" envDefault:"2"`
	ChallengeRetryDelay time.Duration `env:"CHALLENGE_RETRY_DELAY" envDefault:"0s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer reads the server configuration from the environment.
func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	if cfg.ChallengeAttempts == 0 {
		return Server{}, fmt.Errorf("CHALLENGE_ATTEMPTS must be at least 1")
	}
	return cfg, nil
}
