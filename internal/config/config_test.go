package config

import (
	"reflect"
	"strings"
	"testing"
)

// TestParseCSVEnv проверяет разбор списка email из ENV.
func TestParseCSVEnv(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " Admin@example.com, ,USER@Example.com ")

	got := parseCSVEnv("ADMIN_EMAILS")
	want := []string{"admin@example.com", "user@example.com"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestParseCSVEnvMissing проверяет поведение при отсутствии переменной.
func TestParseCSVEnvMissing(t *testing.T) {
	got := parseCSVEnv("MISSING_ENV")
	if got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

// TestValidateProvider проверяет допустимые значения AI_PROVIDER.
func TestValidateProvider(t *testing.T) {
	t.Setenv("ENV_FILE", "/dev/null")
	t.Setenv("ID_TOKEN_SECRET", "secret")
	t.Setenv("AI_PROVIDER", "openai")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "AI_PROVIDER") {
		t.Fatalf("expected AI_PROVIDER error, got %v", err)
	}
}

// TestLoadDefaults проверяет значения по умолчанию.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", "/dev/null")
	t.Setenv("ID_TOKEN_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("unexpected server port: %d", cfg.Server.Port)
	}
	if cfg.Auth.TokenIssuer != "equilibria-identity" {
		t.Fatalf("unexpected issuer: %s", cfg.Auth.TokenIssuer)
	}
	if cfg.AI.Provider != "" {
		t.Fatalf("expected empty provider, got %s", cfg.AI.Provider)
	}
	if !cfg.IsDevelopment() {
		t.Fatal("expected development mode by default")
	}
}
