package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variable names. All are optional; the defaults run a working
// demo out of the box.
const (
	EnvAddr           = "FRESHCART_ADDR"
	EnvDataDir        = "FRESHCART_DATA_DIR"
	EnvReadLatencyMS  = "FRESHCART_READ_LATENCY_MS"
	EnvWriteLatencyMS = "FRESHCART_WRITE_LATENCY_MS"
	EnvAppEnvironment = "APP_ENV"
)

type Config struct {
	Addr         string
	DataDir      string
	ReadLatency  time.Duration
	WriteLatency time.Duration
	Environment  string
}

// Load builds the configuration from the environment. Latencies are the
// simulated round-trip delays of the access layer; zero disables them.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:         ":8080",
		DataDir:      "data",
		ReadLatency:  300 * time.Millisecond,
		WriteLatency: 500 * time.Millisecond,
		Environment:  "dev",
	}

	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvAppEnvironment); v != "" {
		cfg.Environment = v
	}

	var err error
	if cfg.ReadLatency, err = latencyFromEnv(EnvReadLatencyMS, cfg.ReadLatency); err != nil {
		return nil, err
	}
	if cfg.WriteLatency, err = latencyFromEnv(EnvWriteLatencyMS, cfg.WriteLatency); err != nil {
		return nil, err
	}

	return cfg, nil
}

func latencyFromEnv(name string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return 0, fmt.Errorf("invalid %s: %q (want a non-negative integer of milliseconds)", name, v)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
