package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr == "" {
		t.Fatalf("expected default server address")
	}
	if cfg.Advice.Model == "" {
		t.Fatalf("expected default advice model")
	}
	if cfg.Session.CookieName == "" {
		t.Fatalf("expected default cookie name")
	}
}

func TestAdviceConfigured(t *testing.T) {
	t.Setenv("ADVICE_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.AdviceConfigured() {
		t.Fatalf("expected advice configured with key present")
	}
}

func TestAdviceAbsenceIsValid(t *testing.T) {
	t.Setenv("ADVICE_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("credential absence must not be an error, got %v", err)
	}
	if cfg.AdviceConfigured() {
		t.Fatalf("expected advice unconfigured")
	}
}
