package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger    = key("logger")
	KeyRequestID = key("request_id")
)

type Config struct {
	Service  Service
	API      API
	Push     Push
	Logger   Logger
	Platform Platform
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"outreach-workspace"`
	Port string `env:"SERVICE_PORT" env-default:"8081"`
}

// API is shared by the REST client and the push client.
type API struct {
	BaseURL string        `env:"API_URL" env-default:"http://localhost:8000"`
	Timeout time.Duration `env:"API_TIMEOUT" env-default:"0s"`
}

type Push struct {
	Path           string        `env:"PUSH_PATH" env-default:"/socket.io/"`
	ReconnectDelay time.Duration `env:"PUSH_RECONNECT_DELAY" env-default:"2s"`
	JWTSecret      string        `env:"PUSH_JWT_SECRET"`
	UserID         string        `env:"PUSH_USER_ID"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}
	return cfg
}
