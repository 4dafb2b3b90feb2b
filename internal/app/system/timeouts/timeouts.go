// Package timeouts holds the deadlines handlers put on backend API calls.
//
// Pick by the shape of the work:
//   - Ping: the health check's GET /
//   - Short: a single write (create, update, delete, mark)
//   - Medium: one list call
//   - Long: a fan-out across every employee (dashboard, all attendance)
//
// Values can be changed at startup with Configure or ConfigureFromEnv.
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
)

var (
	mu      sync.RWMutex
	current = defaults()
)

func defaults() Config {
	return Config{Ping: DefaultPing, Short: DefaultShort, Medium: DefaultMedium, Long: DefaultLong}
}

// Config holds timeout values. Zero fields are ignored by Configure.
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

// Ping returns the health-check timeout.
func Ping() time.Duration { return Current().Ping }

// Short returns the timeout for a single write.
func Short() time.Duration { return Current().Short }

// Medium returns the timeout for a single list call.
func Medium() time.Duration { return Current().Medium }

// Long returns the timeout for a per-employee fan-out.
func Long() time.Duration { return Current().Long }

// Current returns the active configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Configure overrides the non-zero fields of cfg.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	set(&current.Ping, cfg.Ping)
	set(&current.Short, cfg.Short)
	set(&current.Medium, cfg.Medium)
	set(&current.Long, cfg.Long)
}

// Reset restores the defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = defaults()
}

// ConfigureFromEnv reads TIMEOUT_PING, TIMEOUT_SHORT, TIMEOUT_MEDIUM and
// TIMEOUT_LONG (Go durations such as "500ms" or "2m"). Unset or invalid
// values are skipped. Returns how many were applied.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()

	configured := 0
	for env, dst := range map[string]*time.Duration{
		"TIMEOUT_PING":   &current.Ping,
		"TIMEOUT_SHORT":  &current.Short,
		"TIMEOUT_MEDIUM": &current.Medium,
		"TIMEOUT_LONG":   &current.Long,
	} {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*dst = d
			configured++
		}
	}
	return configured
}

func set(dst *time.Duration, v time.Duration) {
	if v > 0 {
		*dst = v
	}
}

// WithTimeout is context.WithTimeout whose cancel logs a warning when the
// deadline was what ended the operation.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "load dashboard")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
