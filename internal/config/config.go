// Package config holds runtime settings shared by the CLI and the HTTP server.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/vigcrack/kasiski"
)

// Config captures every tunable of a vigcrack process.
type Config struct {
	MinKey       int
	MaxKey       int
	SubstringMin int
	SubstringMax int
	Concurrency  int // 0 means GOMAXPROCS

	Addr       string
	LogLevel   string
	LogFormat  string
	Vocabulary string // path to a vocabulary file; empty disables the dictionary path

	CacheTTL time.Duration
	RedisURL string // empty selects the in-memory cache
}

// Environment variable names read by FromEnv.
const (
	EnvMinKey       = "VIGCRACK_MIN_KEY"
	EnvMaxKey       = "VIGCRACK_MAX_KEY"
	EnvSubstringMin = "VIGCRACK_SUBSTRING_MIN"
	EnvSubstringMax = "VIGCRACK_SUBSTRING_MAX"
	EnvConcurrency  = "VIGCRACK_CONCURRENCY"
	EnvAddr         = "VIGCRACK_ADDR"
	EnvLogLevel     = "VIGCRACK_LOG_LEVEL"
	EnvLogFormat    = "VIGCRACK_LOG_FORMAT"
	EnvVocabulary   = "VIGCRACK_VOCABULARY"
	EnvCacheTTL     = "VIGCRACK_CACHE_TTL"
	EnvRedisURL     = "VIGCRACK_REDIS_URL"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		MinKey:       25,
		MaxKey:       250,
		SubstringMin: kasiski.KasiskiMinSubstring,
		SubstringMax: kasiski.KasiskiMaxSubstring,
		Addr:         ":8080",
		LogLevel:     "info",
		LogFormat:    "text",
		CacheTTL:     10 * time.Minute,
	}
}

// FromEnv overlays VIGCRACK_* variables on Defaults. lookup is usually
// os.LookupEnv; tests pass a map-backed function.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	c := Defaults()

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvMinKey, &c.MinKey},
		{EnvMaxKey, &c.MaxKey},
		{EnvSubstringMin, &c.SubstringMin},
		{EnvSubstringMax, &c.SubstringMax},
		{EnvConcurrency, &c.Concurrency},
	}
	for _, f := range ints {
		v, ok := lookup(f.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", f.name, v, ErrInvalidConfig)
		}
		*f.dst = n
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{EnvAddr, &c.Addr},
		{EnvLogLevel, &c.LogLevel},
		{EnvLogFormat, &c.LogFormat},
		{EnvVocabulary, &c.Vocabulary},
		{EnvRedisURL, &c.RedisURL},
	}
	for _, f := range strs {
		if v, ok := lookup(f.name); ok && v != "" {
			*f.dst = v
		}
	}

	if v, ok := lookup(EnvCacheTTL); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvCacheTTL, v, ErrInvalidConfig)
		}
		c.CacheTTL = d
	}

	return c, c.Validate()
}

// Validate checks ranges and durations.
func (c Config) Validate() error {
	switch {
	case c.MinKey < 1 || c.MinKey > c.MaxKey:
		return fmt.Errorf("key range [%d,%d]: %w", c.MinKey, c.MaxKey, ErrInvalidConfig)
	case c.SubstringMin < 1 || c.SubstringMin > c.SubstringMax:
		return fmt.Errorf("substring range [%d,%d]: %w", c.SubstringMin, c.SubstringMax, ErrInvalidConfig)
	case c.Concurrency < 0:
		return fmt.Errorf("concurrency %d: %w", c.Concurrency, ErrInvalidConfig)
	case c.CacheTTL < 0:
		return fmt.Errorf("cache ttl %s: %w", c.CacheTTL, ErrInvalidConfig)
	}

	return nil
}
