package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends accepted by TUBENOTES_STORE.
const (
	StoreMongo  = "mongo"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// DatabaseName is the Mongo database every collection lives in.
const DatabaseName = "youtube_summaries"

type Config struct {
	ListenPort      string        // ex: ":8000"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request deadline applied by the router

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Document store
	Store               string        // "mongo" | "redis" | "memory"
	StoreConnectTimeout time.Duration // bounded connect + selection timeout (ex: 10s)
	MongoURI            string        // ex: "mongodb://localhost:27017"
	MongoDatabase       string        // always DatabaseName

	// Redis (only when Store == "redis")
	RedisAddr     string // ex: "localhost:6379"
	RedisUser     string // optional
	RedisPassword string // optional
	RedisDB       int    // Redis DB number

	// Summarization
	OpenAIKey         string        // empty => summarization disabled
	OpenAIBaseURL     string        // ex: "https://api.openai.com/v1"
	LLMTimeout        time.Duration // per completion request
	TranscriptTimeout time.Duration // per transcript fetch
	TranscriptLangs   []string      // preferred caption languages, in order

	// Summary creation rate limit (per client IP)
	SummaryRatePerMin int
	SummaryBurst      int

	StaticDir        string // optional, empty => embedded frontend
	BookmarkSeedFile string // optional YAML file imported at startup

	AllowedCIDRS []string // optional, restrict access to /readyz
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("TUBENOTES_LISTEN_PORT", ":8000"),
		ShutdownTimeout: mustDuration("TUBENOTES_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("TUBENOTES_REQUEST_TIMEOUT", 90*time.Second),

		// Logging
		LogLevel:  getenv("TUBENOTES_LOG_LEVEL", "info"),
		PrettyLog: mustBool("TUBENOTES_PRETTY_LOG", true),

		// Store settings
		Store:               strings.ToLower(getenv("TUBENOTES_STORE", StoreMongo)),
		StoreConnectTimeout: mustDuration("TUBENOTES_STORE_CONNECT_TIMEOUT", 10*time.Second),
		MongoURI:            getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:       DatabaseName,

		RedisAddr:     getenv("TUBENOTES_REDIS_ADDR", "localhost:6379"),
		RedisUser:     getenv("TUBENOTES_REDIS_USERNAME", ""),
		RedisPassword: getenv("TUBENOTES_REDIS_PASSWORD", ""),
		RedisDB:       getenvInt("TUBENOTES_REDIS_DB", 0),

		// Summarization
		OpenAIKey:         getenv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     strings.TrimRight(getenv("OPENAI_API_URL", "https://api.openai.com/v1"), "/"),
		LLMTimeout:        mustDuration("TUBENOTES_LLM_TIMEOUT", 30*time.Second),
		TranscriptTimeout: mustDuration("TUBENOTES_TRANSCRIPT_TIMEOUT", 15*time.Second),
		TranscriptLangs:   splitAndTrim(getenv("TUBENOTES_TRANSCRIPT_LANGS", "en")),

		SummaryRatePerMin: getenvInt("TUBENOTES_SUMMARY_RATE_PER_MIN", 0),
		SummaryBurst:      getenvInt("TUBENOTES_SUMMARY_BURST", 0),

		StaticDir:        getenv("TUBENOTES_STATIC_DIR", ""),
		BookmarkSeedFile: getenv("TUBENOTES_BOOKMARK_SEED_FILE", ""),

		// Access restrictions
		AllowedCIDRS: parseAllowedIPs(getenv("TUBENOTES_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("TUBENOTES_TRUST_PROXY", false),
	}

	if err := cfg.validate(); err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

func (c *Config) validate() error {
	switch c.Store {
	case StoreMongo, StoreRedis, StoreMemory:
	default:
		return fmt.Errorf("TUBENOTES_STORE must be one of mongo|redis|memory, got %q", c.Store)
	}
	if c.StoreConnectTimeout <= 0 {
		return fmt.Errorf("TUBENOTES_STORE_CONNECT_TIMEOUT must be > 0, got %v", c.StoreConnectTimeout)
	}
	return nil
}

// SummarizationEnabled reports whether an LLM key is configured.
func (c *Config) SummarizationEnabled() bool {
	return c.OpenAIKey != ""
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	cp := *c
	if cp.RedisPassword != "" {
		cp.RedisPassword = "***REDACTED***"
	}
	if cp.OpenAIKey != "" {
		cp.OpenAIKey = "***REDACTED***"
	}
	cp.MongoURI = redactURI(cp.MongoURI)
	return cp
}

// redactURI hides the userinfo part of a connection string.
func redactURI(uri string) string {
	scheme := strings.Index(uri, "://")
	at := strings.LastIndex(uri, "@")
	if scheme == -1 || at == -1 || at < scheme {
		return uri
	}
	return uri[:scheme+3] + "***REDACTED***" + uri[at:]
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
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
