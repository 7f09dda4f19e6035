package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Errorf("expected default port 5000, got %s", cfg.Server.Port)
	}
	if cfg.JWT.ExpirationHours != 24 {
		t.Errorf("expected default 24h token lifetime, got %d", cfg.JWT.ExpirationHours)
	}
	if !cfg.UsingDefaultJWTSecret() {
		t.Error("expected the default signing key without JWT_SIGNING_KEY set")
	}
	if cfg.DB.ConnMaxLifetime != time.Hour {
		t.Errorf("expected 1h default conn lifetime, got %v", cfg.DB.ConnMaxLifetime)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("JWT_SIGNING_KEY", "deployment-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "12")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.UsingDefaultJWTSecret() {
		t.Error("configured signing key must not be reported as the default")
	}
	if cfg.JWT.ExpirationHours != 12 {
		t.Errorf("expected 12h token lifetime, got %d", cfg.JWT.ExpirationHours)
	}
	if cfg.DB.ConnMaxLifetime != 30*time.Minute {
		t.Errorf("expected 30m conn lifetime, got %v", cfg.DB.ConnMaxLifetime)
	}
}

func TestGetDSN(t *testing.T) {
	cfg := DBConfig{
		Host: "db", Port: "5432", User: "app", Password: "pw",
		DBName: "food_shopdb", SSLMode: "disable",
	}
	want := "host=db port=5432 user=app password=pw dbname=food_shopdb sslmode=disable"
	if got := cfg.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}
