package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI       string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	DBName         string        `env:"DB_NAME" envDefault:"zeestore"`
	Port           string        `env:"PORT" envDefault:"5000"`
	CORSOrigins    []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"https://zeetechshop.netlify.app,http://localhost:3000"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	BcryptCost     int           `env:"BCRYPT_COST" envDefault:"10"`
	Admin          Admin         `envPrefix:"ADMIN_"`
}

// Admin holds the optional bootstrap admin account.
type Admin struct {
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`
}

// Enabled reports whether both bootstrap credentials are set.
func (a Admin) Enabled() bool {
	return strings.TrimSpace(a.Email) != "" && a.Password != ""
}

// Load reads an optional .env file and parses the environment into Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}

	return &cfg, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
