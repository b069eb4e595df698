package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ProviderBaseURL string        // flight search API endpoint
	ProviderAPIKey  string        // flight search API key
	ProviderTimeout time.Duration // per-request timeout for provider calls (default: 30s)

	LongLayoverMinutes int           // layovers at or above this gap are flagged long (default: 240)
	AdvisoryFile       string        // path to the route advisories yaml (optional, empty = advisories disabled)
	AdvisoryReload     time.Duration // interval to reload the advisory file (default: 1h)
	SearchCacheTTL     time.Duration // how long rendered search results stay cached (default: 15m)

	// Redis (optional, empty RedisAddr = result cache disabled)
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)

	RateLimitBurst     int  // token bucket size per client IP
	RateLimitPerMinute int  // token refill rate per client IP
	TrustProxy         bool // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("FD_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("FD_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("FD_LOG_LEVEL", "info"),
		PrettyLog: mustBool("FD_PRETTY_LOG", true),

		// Flight search provider
		ProviderBaseURL: getenv("FD_PROVIDER_BASE_URL", "https://serpapi.com/search"),
		ProviderAPIKey:  requireEnv("FD_PROVIDER_API_KEY"),
		ProviderTimeout: mustDuration("FD_PROVIDER_TIMEOUT", 30*time.Second),

		// Itinerary analysis
		LongLayoverMinutes: getenvInt("FD_LONG_LAYOVER_MINUTES", 240),
		AdvisoryFile:       getenv("FD_ADVISORY_FILE", ""), // Optional, empty = advisories disabled
		AdvisoryReload:     mustDuration("FD_ADVISORY_RELOAD_INTERVAL", 1*time.Hour),
		SearchCacheTTL:     mustDuration("FD_SEARCH_CACHE_TTL", 15*time.Minute),

		// Redis settings
		RedisAddr:             getenv("FD_REDIS_ADDR", ""), // Optional, empty = result cache disabled
		RedisUser:             getenv("FD_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("FD_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("FD_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("FD_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),

		// Access restrictions
		RateLimitBurst:     getenvInt("FD_RATE_LIMIT_BURST", 10),
		RateLimitPerMinute: getenvInt("FD_RATE_LIMIT_PER_MINUTE", 30),
		TrustProxy:         mustBool("FD_TRUST_PROXY", true),
	}

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: FD_REDIS_PASSWORD is required when FD_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.ProviderAPIKey = "***REDACTED***"
		cfgCopy.RedisPassword = "***REDACTED***"
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
