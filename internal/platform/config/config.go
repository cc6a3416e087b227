package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	listutil "loandecision/pkg/platform/strings"
)

// Server captures process level configuration.
type Server struct {
	Addr               string        `yaml:"addr"`
	GRPCAddr           string        `yaml:"grpc_addr"`
	GRPCReflection     bool          `yaml:"grpc_reflection"`
	MetricsEnabled     bool          `yaml:"metrics_enabled"`
	StatusMode         string        `yaml:"status_mode"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
	Log                Log           `yaml:"log"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json", "text"
}

// ConfigFileEnv names the environment variable pointing at an optional YAML file.
const ConfigFileEnv = "LOAN_DECISION_CONFIG"

// Default returns the configuration used when nothing is overridden.
func Default() Server {
	return Server{
		Addr:               ":8080",
		GRPCAddr:           ":9090",
		MetricsEnabled:     true,
		StatusMode:         "legacy",
		CORSAllowedOrigins: []string{"*"},
		ShutdownTimeout:    10 * time.Second,
		Log: Log{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the Server config from defaults, the optional YAML file named
// by LOAN_DECISION_CONFIG, and environment variables, in that order.
func Load() (Server, error) {
	cfg := Default()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Server{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Server{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

func (c *Server) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Server) applyEnv() error {
	if v, ok := os.LookupEnv("LOAN_DECISION_ADDR"); ok && v != "" {
		c.Addr = v
	}
	// An explicitly empty gRPC address disables the gRPC listener.
	if v, ok := os.LookupEnv("LOAN_DECISION_GRPC_ADDR"); ok {
		c.GRPCAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("DECISION_STATUS_MODE"); v != "" {
		c.StatusMode = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.CORSAllowedOrigins = listutil.SplitList(v, ",")
	}

	var err error
	if c.MetricsEnabled, err = envBool("LOAN_DECISION_METRICS_ENABLED", c.MetricsEnabled); err != nil {
		return err
	}
	if c.GRPCReflection, err = envBool("GRPC_REFLECTION", c.GRPCReflection); err != nil {
		return err
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
		}
		c.ShutdownTimeout = d
	}
	return nil
}

// Validate rejects configurations the server cannot start with.
func (c Server) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	switch c.StatusMode {
	case "legacy", "mapped":
	default:
		errs = append(errs, fmt.Errorf("status_mode must be legacy or mapped, got %q", c.StatusMode))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log format must be json or text, got %q", c.Log.Format))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown_timeout must be positive"))
	}
	return errors.Join(errs...)
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}
