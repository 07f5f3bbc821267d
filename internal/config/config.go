package config

import (
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	BackendAddress     string
	StatusPollInterval time.Duration
	StatusWorkerPool   int
	StatusBatchSize    int
	UploadTimeout      time.Duration
	ShutdownTimeout    time.Duration
	CookieSecure       bool
	LoginRatePerMin    int
	LoginBurst         int
}

const (
	defaultRunAddress         = ":8080"
	defaultStatusPollInterval = 5 * time.Second
	defaultStatusWorkerPool   = 4
	defaultStatusBatchSize    = 32
	defaultUploadTimeout      = 30 * time.Second
	defaultShutdownTimeout    = 10 * time.Second
	defaultLoginRatePerMin    = 10
	defaultLoginBurst         = 5
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		BackendAddress:     getString(lookup, "BACKEND_ADDRESS", ""),
		StatusPollInterval: getDuration(lookup, "STATUS_POLL_INTERVAL", defaultStatusPollInterval),
		StatusWorkerPool:   getInt(lookup, "STATUS_WORKER_POOL", defaultStatusWorkerPool),
		StatusBatchSize:    getInt(lookup, "STATUS_BATCH_SIZE", defaultStatusBatchSize),
		UploadTimeout:      getDuration(lookup, "UPLOAD_TIMEOUT", defaultUploadTimeout),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		CookieSecure:       getBool(lookup, "COOKIE_SECURE", false),
		LoginRatePerMin:    getInt(lookup, "LOGIN_RATE_PER_MINUTE", defaultLoginRatePerMin),
		LoginBurst:         getInt(lookup, "LOGIN_BURST", defaultLoginBurst),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.StatusPollInterval.String()
		uploadTimeoutStr   = cfg.UploadTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.BackendAddress, "b", cfg.BackendAddress, "Commerce backend base URL")
	fs.IntVar(&cfg.StatusWorkerPool, "status-workers", cfg.StatusWorkerPool, "Number of concurrent payment status fetchers")
	fs.IntVar(&cfg.StatusBatchSize, "status-batch", cfg.StatusBatchSize, "Maximum orders per status polling batch")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between payment status polls")
	fs.StringVar(&uploadTimeoutStr, "upload-timeout", uploadTimeoutStr, "Timeout for direct object storage uploads")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.CookieSecure, "secure-cookies", cfg.CookieSecure, "Mark session cookies as Secure")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.StatusPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.UploadTimeout, err = time.ParseDuration(uploadTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid upload timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.StatusWorkerPool <= 0 {
		cfg.StatusWorkerPool = defaultStatusWorkerPool
	}

	if cfg.StatusBatchSize <= 0 {
		cfg.StatusBatchSize = defaultStatusBatchSize
	}

	if cfg.StatusPollInterval <= 0 {
		cfg.StatusPollInterval = defaultStatusPollInterval
	}

	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = defaultUploadTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.LoginRatePerMin <= 0 {
		cfg.LoginRatePerMin = defaultLoginRatePerMin
	}

	if cfg.LoginBurst <= 0 {
		cfg.LoginBurst = defaultLoginBurst
	}

	if cfg.BackendAddress == "" {
		return nil, fmt.Errorf("backend address must be provided")
	}

	if parsed, err := url.Parse(cfg.BackendAddress); err != nil || !parsed.IsAbs() {
		return nil, fmt.Errorf("backend address must be an absolute URL")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
