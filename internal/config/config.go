package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Provider  Provider  `validate:"required"`
	Reconcile Reconcile `validate:"required"`
	Cache     Cache
	Tracing   Tracing

	ShippingConfigPath string
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID     string   `validate:"required"`
	Brokers     []string `validate:"required,min=1,dive,hostname_port"`
	OrdersTopic string   `validate:"required"`
	StatusTopic string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

// Provider is the logistics provider API.
type Provider struct {
	BaseURL string        `validate:"required,url"`
	APIKey  string        `validate:"required"`
	Timeout time.Duration `validate:"gt=0"`
}

// Reconcile controls the background transport status polling.
type Reconcile struct {
	FirstRunDelay time.Duration `validate:"gte=0"`
	Interval      time.Duration `validate:"gt=0"`
	PollInterval  time.Duration `validate:"gt=0"`
	Workers       int           `validate:"gte=1"`
	BatchSize     int           `validate:"gte=1"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Tracing struct {
	Enabled     bool
	Endpoint    string `validate:"required_if=Enabled true"`
	ServiceName string
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:     env("KAFKA_GROUP_ID", "transport-sync"),
			OrdersTopic: env("KAFKA_ORDERS_TOPIC", "orders"),
			StatusTopic: env("KAFKA_STATUS_TOPIC", "transport-status"),
			Brokers:     strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "transports"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Provider: Provider{
			BaseURL: env("PROVIDER_BASE_URL", "https://external-api.brenger.nl/v1"),
			APIKey:  env("PROVIDER_API_KEY", ""),
			Timeout: envDuration("PROVIDER_TIMEOUT", 15*time.Second),
		},

		Reconcile: Reconcile{
			FirstRunDelay: envDuration("RECONCILE_FIRST_RUN_DELAY", time.Hour),
			Interval:      envDuration("RECONCILE_INTERVAL", time.Hour),
			PollInterval:  envDuration("RECONCILE_POLL_INTERVAL", time.Minute),
			Workers:       envInt("RECONCILE_WORKERS", 4),
			BatchSize:     envInt("RECONCILE_BATCH_SIZE", 100),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Tracing: Tracing{
			Enabled:     envBool("TRACING_ENABLED", false),
			Endpoint:    env("TRACING_ENDPOINT", "http://localhost:14268/api/traces"),
			ServiceName: env("TRACING_SERVICE_NAME", "transport-sync"),
		},

		ShippingConfigPath: env("SHIPPING_CONFIG_PATH", "config/shipping.yaml"),
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
