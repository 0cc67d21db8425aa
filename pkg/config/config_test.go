package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected IsProd for production env")
	}

	if cfg.Store.Driver != "file" {
		t.Fatalf("expected default file driver, got %q", cfg.Store.Driver)
	}

	if cfg.Catalog.FetchTimeout != 10*time.Second {
		t.Fatalf("expected default catalog fetch timeout 10s, got %v", cfg.Catalog.FetchTimeout)
	}

	if cfg.Store.Key != "vatcart:custom_products" {
		t.Fatalf("unexpected store key %q", cfg.Store.Key)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsUnknownStoreDriver(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStoreDriver, "s3")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown store driver to return an error")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
}
