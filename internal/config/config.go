package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/multierr"
)

type Config struct {
	Port        int    `env:"PORT, default=8080"`
	Environment string `env:"ENVIRONMENT, default=development"`

	// logging
	LogLevel      string `env:"LOG_LEVEL, default=info"`
	LogFile       string `env:"LOG_FILE"`
	LogToStdout   bool   `env:"LOG_TO_STDOUT, default=true"`
	LogFormatJSON bool   `env:"LOG_FORMAT_JSON, default=false"`
	SentryDSN     string `env:"SENTRY_DSN"`

	// storage
	DocumentStore string `env:"DOCUMENT_STORE, default=firestore"`
	DatabaseURL   string `env:"DATABASE_URL"`

	// firebase
	FirebaseCredentialsJSON string `env:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	FirebaseCredentialsFile string `env:"FIREBASE_CREDENTIALS_FILE, default=./serviceAccountKey.json"`
	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID"`
	PushEnabled             bool   `env:"PUSH_ENABLED, default=true"`
	NotificationWorkers     int    `env:"NOTIFICATION_WORKERS, default=5"`

	// auth
	AuthProvider   string `env:"AUTH_PROVIDER, default=clerk"`
	ClerkSecretKey string `env:"CLERK_SECRET_KEY"`

	// locking
	LockBackend   string        `env:"LOCK_BACKEND, default=local"`
	LockTTL       time.Duration `env:"LOCK_TTL, default=10s"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`

	// remote services
	ChatURL       string        `env:"CHAT_API_URL, default=https://wellnex-backend.vercel.app/chat"`
	PredictionURL string        `env:"PREDICTION_API_URL, default=https://wellnex-backend.onrender.com/predict"`
	RemoteTimeout time.Duration `env:"REMOTE_TIMEOUT, default=15s"`
	RemoteRPS     float64       `env:"REMOTE_RPS, default=5"`

	// http
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=*"`
	MetricsUser    string   `env:"METRICS_USER"`
	MetricsPass    string   `env:"METRICS_PASS"`
	PprofSecret    string   `env:"PPROF_SECRET"`
	RateLimitRPS   float64  `env:"RATE_LIMIT_RPS, default=10"`
	RateLimitBurst int      `env:"RATE_LIMIT_BURST, default=20"`
	TrustProxy     bool     `env:"TRUST_PROXY, default=false"`
}

// Load reads an optional .env file and decodes the environment.
func Load(ctx context.Context) (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFrom decodes the given variables only. Used by tests and the CLI.
func LoadFrom(ctx context.Context, vars map[string]string) (*Config, error) {
	var cfg Config
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(vars),
	})
	if err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func oneOf(name, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", name, strings.Join(allowed, "|"), value)
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var err error

	if c.Port <= 0 || c.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("PORT out of range: %d", c.Port))
	}

	err = multierr.Append(err, oneOf("DOCUMENT_STORE", c.DocumentStore, "firestore", "postgres", "memory"))
	err = multierr.Append(err, oneOf("AUTH_PROVIDER", c.AuthProvider, "clerk", "firebase"))
	err = multierr.Append(err, oneOf("LOCK_BACKEND", c.LockBackend, "local", "redis"))

	if c.DocumentStore == "postgres" && c.DatabaseURL == "" {
		err = multierr.Append(err, errors.New("DATABASE_URL is required for the postgres document store"))
	}
	if c.AuthProvider == "clerk" && c.ClerkSecretKey == "" {
		err = multierr.Append(err, errors.New("CLERK_SECRET_KEY is required for clerk auth"))
	}
	if c.LockBackend == "redis" && c.RedisAddr == "" {
		err = multierr.Append(err, errors.New("REDIS_ADDR is required for the redis lock"))
	}
	if c.LockTTL <= 0 {
		err = multierr.Append(err, errors.New("LOCK_TTL must be positive"))
	}
	if c.RemoteTimeout <= 0 {
		err = multierr.Append(err, errors.New("REMOTE_TIMEOUT must be positive"))
	}
	if c.RemoteRPS <= 0 {
		err = multierr.Append(err, errors.New("REMOTE_RPS must be positive"))
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		err = multierr.Append(err, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}
	if c.NotificationWorkers <= 0 {
		err = multierr.Append(err, errors.New("NOTIFICATION_WORKERS must be positive"))
	}

	return err
}

// NeedsFirebase reports whether any configured component uses the Firebase app.
func (c *Config) NeedsFirebase() bool {
	return c.DocumentStore == "firestore" || c.AuthProvider == "firebase" || c.PushEnabled
}
