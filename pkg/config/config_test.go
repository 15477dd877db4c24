package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/otel-shop/pkg/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_CONFIG", "APP_NAME", "HTTP_ADDR", "LOG_LEVEL", "APP_TITLE",
		"APP_SERVICES_ORDERS", "APP_SERVICES_ITEMS", "HTTP_CONNECT_TIMEOUT", "SHUTDOWN_TIMEOUT",
		"OTEL_SDK_DISABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE",
		"OTEL_TRACES_SAMPLER_ARG", "DEPLOYMENT_ENVIRONMENT", "SERVICE_VERSION",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("shop", ":8080")
	require.NoError(t, err)

	assert.Equal(t, "shop", cfg.Name)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "http://localhost:8081", cfg.Services.Orders)
	assert.Equal(t, "http://localhost:8082", cfg.Services.Items)
	assert.Equal(t, 30*time.Second, cfg.Timeouts.Connect)
	assert.True(t, cfg.OTel.Enabled)
	assert.Equal(t, "localhost:4317", cfg.OTel.Endpoint)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_TITLE", "Tanzu shop")
	t.Setenv("APP_SERVICES_ORDERS", "http://orders.apps.svc/")
	t.Setenv("APP_SERVICES_ITEMS", "http://items.apps.svc")
	t.Setenv("HTTP_CONNECT_TIMEOUT", "2s")
	t.Setenv("OTEL_SDK_DISABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://otel-collector:4317/")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.25")

	cfg, err := config.Load("shop", ":8080")
	require.NoError(t, err)

	assert.Equal(t, "Tanzu shop", cfg.Title)
	assert.Equal(t, "http://orders.apps.svc", cfg.Services.Orders)
	assert.Equal(t, "http://items.apps.svc", cfg.Services.Items)
	assert.Equal(t, 2*time.Second, cfg.Timeouts.Connect)
	assert.False(t, cfg.OTel.Enabled)
	assert.Equal(t, "otel-collector:4317", cfg.OTel.Endpoint)
	assert.Equal(t, 0.25, cfg.OTel.SampleRate)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: From file
log_level: DEBUG
services:
  orders: http://orders:8080
otel:
  endpoint: sidecar:4317
  insecure: false
`), 0o600))
	t.Setenv("APP_CONFIG", path)
	t.Setenv("LOG_LEVEL", "WARN")

	cfg, err := config.Load("shop", ":8080")
	require.NoError(t, err)

	assert.Equal(t, "From file", cfg.Title)
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.Equal(t, "http://orders:8080", cfg.Services.Orders)
	assert.Equal(t, "http://localhost:8082", cfg.Services.Items)
	assert.Equal(t, "sidecar:4317", cfg.OTel.Endpoint)
	assert.False(t, cfg.OTel.Insecure)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_CONNECT_TIMEOUT", "soon")
	_, err := config.Load("shop", ":8080")
	require.Error(t, err)

	clearEnv(t)
	t.Setenv("OTEL_SDK_DISABLED", "maybe")
	_, err = config.Load("shop", ":8080")
	require.Error(t, err)

	clearEnv(t)
	t.Setenv("APP_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = config.Load("shop", ":8080")
	require.Error(t, err)
}
