package config

import (
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ACCESS_TOKEN_TTL", "45m")
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("PASSWORD_PEPPER", "pepper")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AccessTokenTTL != 45*time.Minute {
		t.Fatalf("AccessTokenTTL want 45m, got %v", cfg.AccessTokenTTL)
	}
	if cfg.HTTPAddress != ":9090" {
		t.Fatalf("HTTPAddress want :9090, got %s", cfg.HTTPAddress)
	}
	if cfg.PasswordPepper != "pepper" {
		t.Fatalf("PasswordPepper not loaded")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AccessTokenTTL != 30*time.Minute {
		t.Fatalf("default TTL want 30m, got %v", cfg.AccessTokenTTL)
	}
	if cfg.HTTPAddress != ":8080" {
		t.Fatalf("default address want :8080, got %s", cfg.HTTPAddress)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}
