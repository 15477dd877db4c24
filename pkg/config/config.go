// Package config loads service settings from defaults, an optional YAML file
// named by APP_CONFIG, and environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmehra2102/otel-shop/pkg/tracing"
)

// Config holds settings shared by all services plus the shop's peers.
type Config struct {
	Name     string         `yaml:"name"`
	HTTPAddr string         `yaml:"http_addr"`
	LogLevel string         `yaml:"log_level"`
	Title    string         `yaml:"title"`
	Services Services       `yaml:"services"`
	Timeouts Timeouts       `yaml:"timeouts"`
	OTel     tracing.Config `yaml:"otel"`
}

// Services are the base URLs of the shop's backends.
type Services struct {
	Orders string `yaml:"orders"`
	Items  string `yaml:"items"`
}

type Timeouts struct {
	Connect  time.Duration `yaml:"connect"`
	Shutdown time.Duration `yaml:"shutdown"`
	Read     time.Duration `yaml:"read"`
	Write    time.Duration `yaml:"write"`
}

// Default returns the settings for service name listening on addr.
func Default(name, addr string) Config {
	return Config{
		Name:     name,
		HTTPAddr: addr,
		LogLevel: "INFO",
		Title:    "OpenTelemetry demo",
		Services: Services{
			Orders: "http://localhost:8081",
			Items:  "http://localhost:8082",
		},
		Timeouts: Timeouts{
			Connect:  30 * time.Second,
			Shutdown: 10 * time.Second,
			Read:     5 * time.Second,
			Write:    60 * time.Second,
		},
		OTel: tracing.DefaultConfig(),
	}
}

// Load applies APP_CONFIG and environment overrides on top of Default(name, addr).
func Load(name, addr string) (Config, error) {
	cfg := Default(name, addr)

	if path := strings.TrimSpace(os.Getenv("APP_CONFIG")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Name = env("APP_NAME", cfg.Name)
	cfg.HTTPAddr = env("HTTP_ADDR", cfg.HTTPAddr)
	cfg.LogLevel = env("LOG_LEVEL", cfg.LogLevel)
	cfg.Title = env("APP_TITLE", cfg.Title)
	cfg.Services.Orders = strings.TrimRight(env("APP_SERVICES_ORDERS", cfg.Services.Orders), "/")
	cfg.Services.Items = strings.TrimRight(env("APP_SERVICES_ITEMS", cfg.Services.Items), "/")

	var err error
	if cfg.Timeouts.Connect, err = envDuration("HTTP_CONNECT_TIMEOUT", cfg.Timeouts.Connect); err != nil {
		return Config{}, err
	}
	if cfg.Timeouts.Shutdown, err = envDuration("SHUTDOWN_TIMEOUT", cfg.Timeouts.Shutdown); err != nil {
		return Config{}, err
	}

	disabled, err := envBool("OTEL_SDK_DISABLED", !cfg.OTel.Enabled)
	if err != nil {
		return Config{}, err
	}
	cfg.OTel.Enabled = !disabled
	cfg.OTel.Endpoint = trimScheme(env("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.OTel.Endpoint))
	if cfg.OTel.Insecure, err = envBool("OTEL_EXPORTER_OTLP_INSECURE", cfg.OTel.Insecure); err != nil {
		return Config{}, err
	}
	if cfg.OTel.SampleRate, err = envFloat("OTEL_TRACES_SAMPLER_ARG", cfg.OTel.SampleRate); err != nil {
		return Config{}, err
	}
	cfg.OTel.Environment = env("DEPLOYMENT_ENVIRONMENT", cfg.OTel.Environment)
	cfg.OTel.ServiceVersion = env("SERVICE_VERSION", cfg.OTel.ServiceVersion)

	return cfg, nil
}

func env(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envBool(k string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}

func envFloat(k string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return f, nil
}

func envDuration(k string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return d, nil
}

// trimScheme accepts the collector endpoint as a URL, the way OTEL_EXPORTER_OTLP_ENDPOINT
// is usually written, and reduces it to host:port.
func trimScheme(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	return strings.TrimRight(endpoint, "/")
}
