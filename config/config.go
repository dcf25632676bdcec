package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Order sources
const (
	OrderSourceAPI      = "api"
	OrderSourcePostgres = "postgres"
)

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	JWTSecret     string
	AllowedOrigin string
	// Order source selection: "api" (upstream order service) or "postgres" (ERP database)
	OrderSource string
	// Upstream order API
	UpstreamAPIURL       string
	UpstreamAPIToken     string
	UpstreamTimeout      time.Duration
	UpstreamMaxRetries   int
	UpstreamRetryBackoff time.Duration
	UpstreamRPS          float64
	UpstreamBurst        int
	// DB Config (only when OrderSource == postgres)
	DBUrl             string
	DBMaxConns        int32
	DBMinConns        int32
	DBMaxConnIdleTime time.Duration
	// Cache
	CacheOrderTTL time.Duration
	CacheEnumsTTL time.Duration
	// Inbound rate limit
	RateLimitRPS   float64
	RateLimitBurst int
	// Peers allowed to set X-Forwarded-For (CIDRs or IPs); empty trusts RemoteAddr only
	TrustedProxies []string
	// Metrics endpoint bearer token, empty disables /metrics
	MetricsToken string
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: .env for local dev, system env vars otherwise
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		JWTSecret:     getEnv("JWT_SECRET", "default_secret_CHANGE_ME"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),

		OrderSource: getEnv("ORDER_SOURCE", OrderSourceAPI),

		UpstreamAPIURL:       getEnv("UPSTREAM_API_URL", ""),
		UpstreamAPIToken:     getEnv("UPSTREAM_API_TOKEN", ""),
		UpstreamTimeout:      getDurationEnv("UPSTREAM_TIMEOUT", 10*time.Second),
		UpstreamMaxRetries:   getIntEnv("UPSTREAM_MAX_RETRIES", 3),
		UpstreamRetryBackoff: getDurationEnv("UPSTREAM_RETRY_BACKOFF", 200*time.Millisecond),
		UpstreamRPS:          getFloatEnv("UPSTREAM_RPS", 20),
		UpstreamBurst:        getIntEnv("UPSTREAM_BURST", 40),

		DBUrl:             getEnv("DB_DSN", ""),
		DBMaxConns:        getInt32Env("DB_MAX_CONNS", 10),
		DBMinConns:        getInt32Env("DB_MIN_CONNS", 2),
		DBMaxConnIdleTime: getDurationEnv("DB_MAX_CONN_IDLE_TIME", time.Minute*15),

		// Cache defaults: 1m orders, 1h enums
		CacheOrderTTL: getDurationEnv("CACHE_ORDER_TTL", time.Minute),
		CacheEnumsTTL: getDurationEnv("CACHE_ENUMS_TTL", time.Hour),

		RateLimitRPS:   getFloatEnv("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getIntEnv("RATE_LIMIT_BURST", 100),
		TrustedProxies: getListEnv("TRUSTED_PROXIES"),

		MetricsToken: getEnv("METRICS_TOKEN", ""),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	switch c.OrderSource {
	case OrderSourceAPI:
		if c.UpstreamAPIURL == "" {
			log.Fatal("CRITICAL: UPSTREAM_API_URL is required when ORDER_SOURCE=api")
		}
	case OrderSourcePostgres:
		if c.DBUrl == "" {
			log.Fatal("CRITICAL: DB_DSN is required when ORDER_SOURCE=postgres")
		}
	default:
		log.Fatalf("CRITICAL: unknown ORDER_SOURCE %q (expected %q or %q)", c.OrderSource, OrderSourceAPI, OrderSourcePostgres)
	}
	if c.JWTSecret == "default_secret_CHANGE_ME" {
		log.Println("WARNING: Using default JWT secret. Setting up for failure in production.")
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Invalid float for %s, using fallback", key)
	}
	return fallback
}

// getListEnv splits a comma separated value, dropping empty entries.
func getListEnv(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
