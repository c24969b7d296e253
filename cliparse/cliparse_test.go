// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envKeys = []string{
	"PORT", "DATABASE_URL", "DATABASE_TYPE", "SEASON_FILE", "ADMIN_PASSWORD",
	"ADMIN_PASSWORD_HASH", "JWT_SECRET", "TOKEN_TTL", "LOG_LEVEL",
}

// clearEnv blanks every variable ParseFlags reads, restored after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" || cfg.DatabaseURL != DefaultSQLiteURL {
		t.Errorf("expected sqlite at %s, got %s at %s", DefaultSQLiteURL, cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.AdminPassword != DefaultAdminPassword {
		t.Errorf("expected default admin password, got %q", cfg.AdminPassword)
	}
	if cfg.TokenTTL != DefaultTokenTTL {
		t.Errorf("expected TTL %v, got %v", DefaultTokenTTL, cfg.TokenTTL)
	}
	if len(cfg.JWTSecret) != 64 {
		t.Errorf("expected generated 64-char secret, got %q", cfg.JWTSecret)
	}
	if cfg.Debug {
		t.Error("expected debug off")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("SEASON_FILE", "season.yaml")
	t.Setenv("ADMIN_PASSWORD", "pit-wall")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" || cfg.DatabaseURL != "postgres://test" {
		t.Errorf("unexpected database %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.SeasonFile != "season.yaml" {
		t.Errorf("expected season.yaml, got %q", cfg.SeasonFile)
	}
	if cfg.AdminPassword != "pit-wall" || cfg.JWTSecret != "env-secret" {
		t.Errorf("secrets not read from env: %+v", cfg)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("expected 30m, got %v", cfg.TokenTTL)
	}
	if !cfg.Debug {
		t.Error("expected LOG_LEVEL=DEBUG to enable debug")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_PASSWORD", "from-env")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin-password", "from-cli", "-token-ttl", "1h", "-debug"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.AdminPassword != "from-cli" {
		t.Errorf("CLI should override env: got %q", cfg.AdminPassword)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected file:test.db, got %q", cfg.DatabaseURL)
	}
	if cfg.TokenTTL != time.Hour || !cfg.Debug {
		t.Errorf("unexpected ttl/debug: %v %v", cfg.TokenTTL, cfg.Debug)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad port env", nil, map[string]string{"PORT": "abc"}},
		{"port out of range", []string{"-p", "70000"}, nil},
		{"unknown db type", []string{"-t", "mysql"}, nil},
		{"postgres without url", []string{"-t", "postgres"}, nil},
		{"bad ttl env", nil, map[string]string{"TOKEN_TTL": "soon"}},
		{"negative ttl", []string{"-token-ttl", "-1h"}, nil},
		{"unknown flag", []string{"-nope"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	// godotenv treats a set-but-empty variable as present
	os.Unsetenv("ADMIN_PASSWORD")

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=6000\nADMIN_PASSWORD=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 7000 {
		t.Errorf("existing env should win over .env: got %d", cfg.Port)
	}
	if cfg.AdminPassword != "from-file" {
		t.Errorf("expected password from .env, got %q", cfg.AdminPassword)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}
