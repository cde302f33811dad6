package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Auth struct {
		// Shared secret for session token signing.
		JWTSecret    string        `env:"JWT_SECRET,required"`
		ChallengeTTL time.Duration `env:"CHALLENGE_TTL" envDefault:"300s"`
		SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	}

	Admin struct {
		Key string `env:"ADMIN_KEY,required"`
	}
}

func Load() *Config {
	// Missing .env is fine, production sets the variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
