package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every process-wide setting. It is parsed once at startup
// and passed into constructors; nothing reads the environment afterwards.
type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	DatabaseDSN    string        `env:"DATABASE_DSN,required"`
	JWTSecret      string        `env:"JWT_SECRET,required"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
}

func Load() (Config, error) {
	return env.ParseAs[Config]()
}
