package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BCRYPT_COST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("Expected default port 3000, got %s", cfg.Server.Port)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("Expected default bcrypt cost 10, got %d", cfg.Auth.BcryptCost)
	}
	if !strings.Contains(cfg.Database.GetDSN(), "host=localhost") {
		t.Errorf("Expected DSN built from parts, got %s", cfg.Database.GetDSN())
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://blog:secret@db:5432/blog?sslmode=disable")
	t.Setenv("DB_MAX_LIFETIME", "90s")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8081" {
		t.Errorf("Expected port 8081, got %s", cfg.Server.Port)
	}
	if cfg.Database.GetDSN() != "postgres://blog:secret@db:5432/blog?sslmode=disable" {
		t.Errorf("Expected DATABASE_URL to win, got %s", cfg.Database.GetDSN())
	}
	if cfg.Database.MaxLifetime != 90*time.Second {
		t.Errorf("Expected 90s lifetime, got %s", cfg.Database.MaxLifetime)
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("Expected fallback to 25 on bad value, got %d", cfg.Database.MaxOpenConns)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "3000"},
			Database: DatabaseConfig{Host: "localhost", Name: "blog"},
			Auth:     AuthConfig{BcryptCost: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"non-numeric port", func(c *Config) { c.Server.Port = "http" }, "PORT"},
		{"no database", func(c *Config) { c.Database.Host = "" }, "DB_HOST"},
		{"url without parts", func(c *Config) { c.Database = DatabaseConfig{URL: "postgres://x"} }, ""},
		{"bcrypt cost too high", func(c *Config) { c.Auth.BcryptCost = 40 }, "BCRYPT_COST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}
