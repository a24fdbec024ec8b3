package config

import "testing"

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("APP_ENV", "")

	env := LoadEnv()
	if env.AppAddr != ":8080" {
		t.Fatalf("unexpected default addr %q", env.AppAddr)
	}
	if env.DBDSN == "" {
		t.Fatalf("expected a default DSN")
	}
	if len(env.CORSOrigins) != 2 {
		t.Fatalf("expected default origins, got %v", env.CORSOrigins)
	}
	if env.IsDevelopment() {
		t.Fatalf("empty APP_ENV must not count as development")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("APP_ENV", "Development")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://limo.example.com, https://admin.limo.example.com")

	env := LoadEnv()
	if env.AppAddr != ":9090" {
		t.Fatalf("addr override not applied, got %q", env.AppAddr)
	}
	if !env.IsDevelopment() {
		t.Fatalf("APP_ENV=Development should count as development")
	}
	if len(env.CORSOrigins) != 2 || env.CORSOrigins[0] != "https://limo.example.com" {
		t.Fatalf("origins not parsed, got %v", env.CORSOrigins)
	}
}
