package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the server configuration. Files are TOML; DEALCALC_* environment
// variables override file values.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Cache     CacheConfig     `toml:"cache"`
	Logging   LoggingConfig   `toml:"logging"`
	AI        AIConfig        `toml:"ai"`
	Scenarios ScenarioConfig  `toml:"scenarios"`
}

type ServerConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	ReadTimeout     string `toml:"read_timeout"`     // e.g. "15s"
	WriteTimeout    string `toml:"write_timeout"`    // e.g. "15s"
	IdleTimeout     string `toml:"idle_timeout"`     // e.g. "60s"
	ShutdownTimeout string `toml:"shutdown_timeout"` // e.g. "10s"
}

type RateLimitConfig struct {
	Requests int    `toml:"requests"` // allowed per window and client
	Window   string `toml:"window"`   // e.g. "1m"
}

type CacheConfig struct {
	Backend       string `toml:"backend"` // "memory", "redis" or "none"
	TTL           string `toml:"ttl"`     // "0" keeps entries forever
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	RedisPrefix   string `toml:"redis_prefix"`
}

type LoggingConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

type AIConfig struct {
	APIKey    string `toml:"api_key"` // usually from ANTHROPIC_API_KEY
	Model     string `toml:"model"`
	MaxTokens int64  `toml:"max_tokens"`
}

type ScenarioConfig struct {
	MaxTermRangeYears int `toml:"max_term_range_years"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "",
			Port:            8080,
			ReadTimeout:     "15s",
			WriteTimeout:    "15s",
			IdleTimeout:     "60s",
			ShutdownTimeout: "10s",
		},
		RateLimit: RateLimitConfig{
			Requests: 5,
			Window:   "1m",
		},
		Cache: CacheConfig{
			Backend:     "memory",
			TTL:         "30m",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "biz-acquisition:",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		AI: AIConfig{
			Model:     "claude-sonnet-4-20250514",
			MaxTokens: 400,
		},
		Scenarios: ScenarioConfig{
			MaxTermRangeYears: 30,
		},
	}
}

// LoadFromFiles starts from the defaults, applies each TOML file in order
// and then the environment. Later files override earlier ones.
func LoadFromFiles(paths ...string) (*Config, error) {
	cfg := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if host := os.Getenv("DEALCALC_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("DEALCALC_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if requests := os.Getenv("DEALCALC_RATE_LIMIT_REQUESTS"); requests != "" {
		if r, err := strconv.Atoi(requests); err == nil {
			cfg.RateLimit.Requests = r
		}
	}
	if window := os.Getenv("DEALCALC_RATE_LIMIT_WINDOW"); window != "" {
		cfg.RateLimit.Window = window
	}
	if backend := os.Getenv("DEALCALC_CACHE_BACKEND"); backend != "" {
		cfg.Cache.Backend = strings.ToLower(backend)
	}
	if ttl := os.Getenv("DEALCALC_CACHE_TTL"); ttl != "" {
		cfg.Cache.TTL = ttl
	}
	if addr := os.Getenv("DEALCALC_REDIS_ADDR"); addr != "" {
		cfg.Cache.RedisAddr = addr
	}
	if password := os.Getenv("DEALCALC_REDIS_PASSWORD"); password != "" {
		cfg.Cache.RedisPassword = password
	}
	if db := os.Getenv("DEALCALC_REDIS_DB"); db != "" {
		if d, err := strconv.Atoi(db); err == nil {
			cfg.Cache.RedisDB = d
		}
	}
	if level := os.Getenv("DEALCALC_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		cfg.AI.APIKey = key
	}
	if model := os.Getenv("DEALCALC_AI_MODEL"); model != "" {
		cfg.AI.Model = model
	}
}

// Validate checks that durations parse and enumerations are known.
func (c *Config) Validate() error {
	durations := map[string]string{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.idle_timeout":     c.Server.IdleTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"rate_limit.window":       c.RateLimit.Window,
		"cache.ttl":               c.Cache.TTL,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("config %s: %w", name, err)
		}
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config server.port: %d out of range", c.Server.Port)
	}
	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("config rate_limit.requests: must be positive")
	}

	switch c.Cache.Backend {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("config cache.backend: unknown backend %q", c.Cache.Backend)
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Duration parses a value that Validate already accepted.
func Duration(value string) time.Duration {
	d, _ := time.ParseDuration(value)
	return d
}
