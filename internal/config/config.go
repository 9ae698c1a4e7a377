package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string
	StaticDir      string
	TrustedProxies []string

	// StoreDriver selects the user and task stores: mongo, postgres or sqlite.
	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	PostgreSQL    string
	SQLitePath    string

	JWTSecret        string
	JWTExpiry        time.Duration
	AdminInviteToken string

	RedisURL        string
	RedisHost       string
	RedisPort       string
	RedisPassword   string
	RedisDB         int
	ProfileCacheTTL time.Duration

	NatsURL string

	RateLimitRPS      float64
	RateLimitBurst    int
	LoginRateWindow   time.Duration
	LoginRateMaxTries int
}

// Load reads the configuration from the environment, after merging a .env
// file from the working directory when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	cfg := &Config{
		HTTPAddr:       GetEnvAsString("HTTP_ADDR", ":8080"),
		StaticDir:      GetEnvAsString("STATIC_DIR", ""),
		TrustedProxies: GetEnvAsSlice("TRUSTED_PROXIES", nil),

		StoreDriver:   GetEnvAsString("STORE_DRIVER", "mongo"),
		MongoURI:      GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: GetEnvAsString("MONGO_DATABASE", "taskmanager"),
		PostgreSQL:    GetEnvAsString("PostgreSQL", ""),
		SQLitePath:    GetEnvAsString("SQLITE_PATH", "data/tasks.db"),

		JWTSecret:        GetEnvAsString("JWT_SECRET", ""),
		JWTExpiry:        GetEnvAsDuration("JWT_EXPIRY", 7*24*time.Hour),
		AdminInviteToken: GetEnvAsString("ADMIN_INVITE_TOKEN", ""),

		RedisURL:        GetEnvAsString("REDIS_URL", ""),
		RedisHost:       GetEnvAsString("REDIS_HOST", "localhost"),
		RedisPort:       GetEnvAsString("REDIS_PORT", "6379"),
		RedisPassword:   GetEnvAsString("REDIS_PASSWORD", ""),
		RedisDB:         GetEnvAsInt("REDIS_DB", 0),
		ProfileCacheTTL: GetEnvAsDuration("PROFILE_CACHE_TTL", 5*time.Minute),

		NatsURL: GetEnvAsString("NATS_URL", ""),

		RateLimitRPS:      GetEnvAsFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst:    GetEnvAsInt("RATE_LIMIT_BURST", 100),
		LoginRateWindow:   GetEnvAsDuration("LOGIN_RATE_WINDOW", 15*time.Minute),
		LoginRateMaxTries: GetEnvAsInt("LOGIN_RATE_MAX_TRIES", 10),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return fmt.Errorf("invalid TRUSTED_PROXIES entry %q: %w", cidr, err)
		}
	}
	switch c.StoreDriver {
	case "mongo":
		if c.MongoURI == "" {
			return errors.New("MONGO_URI must be set for the mongo store")
		}
	case "postgres":
		if c.PostgreSQL == "" {
			return errors.New("PostgreSQL must be set for the postgres store")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH must be set for the sqlite store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}
