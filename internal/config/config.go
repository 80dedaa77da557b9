package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "30s" or "1h" decode.
type Duration time.Duration

// UnmarshalYAML decodes a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// Config holds all service settings, loaded from a YAML file.
type Config struct {
	Server struct {
		Host    string `yaml:"host"`
		Port    string `yaml:"port"`
		Prefork bool   `yaml:"prefork"`
	} `yaml:"server"`
	Logger struct {
		File       string `yaml:"file"`
		Level      string `yaml:"level"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"logger"`
	Cache struct {
		RedisHost       string   `yaml:"redis_host"`
		RateLimitDB     int      `yaml:"redis_rate_db"`
		PDFCacheDB      int      `yaml:"redis_pdf_db"`
		PDFCacheEnabled bool     `yaml:"pdf_cache_enabled"`
		PDFCacheTTL     Duration `yaml:"pdf_cache_ttl"`
	} `yaml:"cache"`
	RateLimiter struct {
		EnableUserLimiter bool     `yaml:"enable_user_limiter"`
		UserLimit         int      `yaml:"user_limit"`
		Interval          Duration `yaml:"interval"`
	} `yaml:"rate_limiter"`
	PDF struct {
		TimeoutSecs      int    `yaml:"timeout_secs"`
		LogoPath         string `yaml:"logo_path"`
		TruncationPolicy string `yaml:"truncation_policy"`
	} `yaml:"pdf"`
}

func defaults() Config {
	var cfg Config
	cfg.Server.Port = ":8080"
	cfg.Logger.Level = "info"
	cfg.Logger.MaxSizeMB = 10
	cfg.Logger.MaxBackups = 3
	cfg.Logger.MaxAgeDays = 14
	cfg.Cache.PDFCacheTTL = Duration(24 * time.Hour)
	cfg.RateLimiter.Interval = Duration(time.Minute)
	cfg.PDF.TimeoutSecs = 30
	cfg.PDF.TruncationPolicy = "drop"
	return cfg
}

// Load reads the config from CONFIG_PATH, falling back to ./config.yaml.
// Built-in defaults apply when neither file exists.
func Load() Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); err != nil {
		return defaults()
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the YAML file at path. It panics on unreadable
// files or invalid values: the service must not start on a broken config.
func LoadFrom(path string) Config {
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("config: reading %s: %v", path, err))
	}
	cfg := defaults()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		panic(fmt.Sprintf("config: parsing %s: %v", path, err))
	}
	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.RateLimiter.UserLimit < 0 {
		panic(fmt.Sprintf("config: user_limit must not be negative, got %d", cfg.RateLimiter.UserLimit))
	}
	if (cfg.RateLimiter.EnableUserLimiter || cfg.RateLimiter.UserLimit > 0) && cfg.RateLimiter.Interval <= 0 {
		panic("config: rate_limiter.interval must be positive when the user limiter is enabled")
	}
	if cfg.PDF.TimeoutSecs <= 0 {
		panic(fmt.Sprintf("config: pdf.timeout_secs must be positive, got %d", cfg.PDF.TimeoutSecs))
	}
	switch cfg.PDF.TruncationPolicy {
	case "", "drop", "spill":
	default:
		panic(fmt.Sprintf("config: unknown pdf.truncation_policy %q", cfg.PDF.TruncationPolicy))
	}
	if cfg.Cache.PDFCacheTTL < 0 {
		panic("config: cache.pdf_cache_ttl must not be negative")
	}
	if cfg.Cache.PDFCacheEnabled && cfg.Cache.RedisHost == "" {
		panic("config: cache.pdf_cache_enabled requires cache.redis_host")
	}
}
