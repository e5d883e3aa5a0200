package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Client provisioning policies accepted by CLIENT_POLICY.
const (
	ClientPolicySynthesize = "synthesize"
	ClientPolicyTrust      = "trust"
)

// Config holds application level configuration loaded from flags, environment and .env file.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	ClientPolicy    string
	DefaultPageSize int
	MaxPageSize     int
	ShutdownTimeout time.Duration
	LogLevel        string
	CORSOrigins     []string
}

const (
	defaultRunAddress      = ":8080"
	defaultEnvFile         = ".env"
	defaultClientPolicy    = ClientPolicySynthesize
	defaultPageSize        = 20
	defaultMaxPageSize     = 100
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultCORSOrigins     = "*"
)

// Load parses configuration from flags and environment variables.
// Variables missing from the process environment are looked up in the file named by ENV_FILE.
func Load() (*Config, error) {
	path := defaultEnvFile
	if v, ok := os.LookupEnv("ENV_FILE"); ok && v != "" {
		path = v
	}
	lookup, err := withEnvFile(path, os.LookupEnv)
	if err != nil {
		return nil, err
	}
	return load(os.Args[1:], lookup)
}

type envLookup func(string) (string, bool)

func withEnvFile(path string, base envLookup) (envLookup, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read env file: %w", err)
	}
	return func(key string) (string, bool) {
		if v, ok := base(key); ok {
			return v, ok
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		ClientPolicy:    getString(lookup, "CLIENT_POLICY", defaultClientPolicy),
		DefaultPageSize: getInt(lookup, "PAGE_SIZE", defaultPageSize),
		MaxPageSize:     getInt(lookup, "MAX_PAGE_SIZE", defaultMaxPageSize),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:        getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	flags := flag.NewFlagSet("freightorders", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		corsOrigins        = getString(lookup, "CORS_ALLOW_ORIGINS", defaultCORSOrigins)
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	flags.StringVar(&cfg.ClientPolicy, "client-policy", cfg.ClientPolicy, "Client provisioning policy: synthesize or trust")
	flags.IntVar(&cfg.DefaultPageSize, "page-size", cfg.DefaultPageSize, "Default query page size")
	flags.IntVar(&cfg.MaxPageSize, "max-page-size", cfg.MaxPageSize, "Maximum query page size")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	flags.StringVar(&corsOrigins, "cors-origins", corsOrigins, "Comma separated list of allowed CORS origins")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	cfg.CORSOrigins = splitList(corsOrigins)
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{defaultCORSOrigins}
	}

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = defaultPageSize
	}

	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = defaultMaxPageSize
	}

	if cfg.DefaultPageSize > cfg.MaxPageSize {
		cfg.DefaultPageSize = cfg.MaxPageSize
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	cfg.ClientPolicy = strings.ToLower(strings.TrimSpace(cfg.ClientPolicy))
	if cfg.ClientPolicy != ClientPolicySynthesize && cfg.ClientPolicy != ClientPolicyTrust {
		return nil, fmt.Errorf("invalid client policy %q", cfg.ClientPolicy)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
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

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
