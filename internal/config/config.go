package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del front y de la API de desarrollo.
type Config struct {
	HTTPPort         string        `env:"HTTP_PORT" envDefault:"8000"`
	APIBaseURL       string        `env:"API_BASE_URL" envDefault:"http://127.0.0.1:5000/api/v1"`
	APITimeout       time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	SessionCookie    string        `env:"SESSION_COOKIE" envDefault:"token"`
	FetchConcurrency int           `env:"FETCH_CONCURRENCY" envDefault:"8"`

	MockAPIPort            string `env:"MOCK_API_PORT" envDefault:"5000"`
	JWTSecret              string `env:"JWT_SECRET"`
	JWTTTLMinutes          int    `env:"JWT_TTL_MINUTES" envDefault:"60"`
	RedisAddr              string `env:"REDIS_ADDR"`
	RedisPassword          string `env:"REDIS_PASSWORD"`
	RedisDB                int    `env:"REDIS_DB" envDefault:"0"`
	LoginRateWindowSeconds int    `env:"LOGIN_RATE_WINDOW_SECONDS" envDefault:"600"`
	LoginRateMax           int    `env:"LOGIN_RATE_MAX" envDefault:"10"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = 1
	}
	return &cfg, nil
}
