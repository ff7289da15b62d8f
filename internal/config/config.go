package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends selectable with CURATOR_STORE.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// DefaultAdminPassword is used only when CURATOR_ADMIN_PASSWORD is unset.
const DefaultAdminPassword = "123456"

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SeedFile string // optional seed YAML; empty = dataset embedded in the binary
	Profile  string // namespace of the local store slots (ex: "default")

	Store      string // "memory" | "redis" | "sqlite"
	SQLitePath string // ex: "curator.db"

	// Redis (only read when Store == "redis")
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // dial timeout
	RedisRT             time.Duration // read timeout
	RedisWT             time.Duration // write timeout
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
	RedisPoolSize       int           // connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries, doubled each time

	AdminPassword string        // shared secret for the admin surface
	AdminTokenTTL time.Duration // lifetime of an admin session token

	AllowedOrigins []string // CORS origins; empty = same-origin only
	AllowedHosts   []string // optional, restrict access to specific Host headers
	AdminCIDRs     []string // optional, restrict /api/admin to these networks
	TrustProxy     bool     // true => trust X-Forwarded-For headers

	MaxUploadBytes      int64 // upper bound of an imported CSV
	ContribBurst        int   // contributions accepted in a burst per client
	ContribRefillPerMin int   // contribution tokens regained per minute
}

// Load reads the configuration from the environment, after merging an
// optional .env file from the working directory. Invalid required values
// panic: the process cannot start without them.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("CURATOR_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("CURATOR_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("CURATOR_LOG_LEVEL", "info"),
		PrettyLog: mustBool("CURATOR_PRETTY_LOG", true),

		// Dataset and local store
		SeedFile:   getenv("CURATOR_SEED_FILE", ""),
		Profile:    getenv("CURATOR_PROFILE", "default"),
		Store:      strings.ToLower(getenv("CURATOR_STORE", StoreMemory)),
		SQLitePath: getenv("CURATOR_SQLITE_PATH", "curator.db"),

		// Admin
		AdminPassword: getenv("CURATOR_ADMIN_PASSWORD", DefaultAdminPassword),
		AdminTokenTTL: mustDuration("CURATOR_ADMIN_TOKEN_TTL", 12*time.Hour),

		// Access restrictions
		AllowedOrigins: splitAndTrim(getenv("CURATOR_ALLOWED_ORIGINS", "")),
		AllowedHosts:   splitAndTrim(getenv("CURATOR_ALLOWED_HOSTS", "")),
		AdminCIDRs:     parseAllowedIPs(getenv("CURATOR_ADMIN_CIDRS", "")),
		TrustProxy:     mustBool("CURATOR_TRUST_PROXY", false),

		// Limits
		MaxUploadBytes:      getenvInt64("CURATOR_MAX_UPLOAD_BYTES", 5<<20),
		ContribBurst:        getenvInt("CURATOR_CONTRIB_BURST", 5),
		ContribRefillPerMin: getenvInt("CURATOR_CONTRIB_REFILL_PER_MIN", 2),
	}

	switch cfg.Store {
	case StoreMemory:
	case StoreSQLite:
		if cfg.SQLitePath == "" {
			panic("❌ FATAL: CURATOR_SQLITE_PATH is required when CURATOR_STORE=sqlite")
		}
	case StoreRedis:
		loadRedis(cfg)
	default:
		panic(fmt.Sprintf("❌ FATAL: Invalid CURATOR_STORE %q (memory, redis or sqlite)", cfg.Store))
	}

	if cfg.Profile == "" || strings.ContainsAny(cfg.Profile, ": \t") {
		panic(fmt.Sprintf("❌ FATAL: Invalid CURATOR_PROFILE %q", cfg.Profile))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

func loadRedis(cfg *Config) {
	cfg.RedisAddr = requireEnv("CURATOR_REDIS_ADDR")
	cfg.RedisUser = getenv("CURATOR_REDIS_USERNAME", "")
	cfg.RedisPassword = getenv("CURATOR_REDIS_PASSWORD", "")
	cfg.RedisDB = getenvInt("CURATOR_REDIS_DB", 0)
	cfg.RedisDT = mustDuration("CURATOR_REDIS_DIAL_TIMEOUT", 5*time.Second)
	cfg.RedisRT = mustDuration("CURATOR_REDIS_READ_TIMEOUT", 3*time.Second)
	cfg.RedisWT = mustDuration("CURATOR_REDIS_WRITE_TIMEOUT", 3*time.Second)
	cfg.RedisMaxWait = mustDuration("CURATOR_REDIS_MAX_WAIT", 10*time.Second)
	cfg.RedisPingTimeout = mustDuration("CURATOR_REDIS_PING_TIMEOUT", 5*time.Second)
	cfg.RedisPoolSize = getenvInt("CURATOR_REDIS_POOL_SIZE", 10)
	cfg.RedisConnectTimeout = mustDuration("CURATOR_REDIS_CONNECT_TIMEOUT", 30*time.Second)
	cfg.RedisRetryInterval = mustDuration("CURATOR_REDIS_RETRY_INTERVAL", 2*time.Second)
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	out := *c
	if out.RedisPassword != "" {
		out.RedisPassword = "***REDACTED***"
	}
	out.AdminPassword = "***REDACTED***"
	return out
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

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil && i > 0 {
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

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
