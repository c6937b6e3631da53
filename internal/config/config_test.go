package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "tiffin")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "tiffinmate")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.App.Port)
	}
	if cfg.App.RequestTimeout != 10*time.Second {
		t.Fatalf("expected default request timeout 10s, got %s", cfg.App.RequestTimeout)
	}
	if cfg.Swagger.Host != "localhost:8080" {
		t.Fatalf("unexpected swagger host %s", cfg.Swagger.Host)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_NAME", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DB settings")
	}
}

func TestRequestTimeoutSeconds(t *testing.T) {
	setRequired(t)
	t.Setenv("REQUEST_TIMEOUT", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.RequestTimeout != 30*time.Second {
		t.Fatalf("expected 30s, got %s", cfg.App.RequestTimeout)
	}
}

func TestDSN(t *testing.T) {
	db := DBConfig{User: "u", Password: "p", Name: "tiffinmate"}
	want := "postgres://u:p@localhost:5432/tiffinmate?sslmode=disable"
	if got := db.DSN(); got != want {
		t.Fatalf("DSN = %s, want %s", got, want)
	}
}
