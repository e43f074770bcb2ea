package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"tokenSecret": "",
			"cookieName":  "",
		},
		"uploads": map[string]any{
			"publicPath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_TOKENSECRET", want: "auth.tokenSecret"},
		{envKey: "AUTH_COOKIENAME", want: "auth.cookieName"},
		{envKey: "UPLOADS_PUBLICPATH", want: "uploads.publicPath"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Auth.TokenSecret != InsecureFallbackSecret {
		t.Fatalf("expected fallback secret, got %q", cfg.Auth.TokenSecret)
	}
	if !cfg.UsingFallbackSecret() {
		t.Fatal("expected UsingFallbackSecret to report true")
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("expected 24h token TTL, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.CookieName != "auth-token" {
		t.Fatalf("unexpected cookie name %q", cfg.Auth.CookieName)
	}

	cfg = &Config{}
	cfg.Auth.TokenSecret = "a-real-secret"
	cfg.applyDefaults()
	if cfg.UsingFallbackSecret() {
		t.Fatal("configured secret should not count as fallback")
	}
}
