package config

import (
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "ENV", "CORS_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"DOCTOR_DATA_FILE", "BOOKING_DELAY_MS", "BOOKING_SUCCESS_RATE",
		"SESSION_TTL_MINUTES",
	} {
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Error("expected development mode by default")
	}
	if cfg.BookingDelayMS != 1500 {
		t.Errorf("BookingDelayMS = %d, want 1500", cfg.BookingDelayMS)
	}
	if cfg.BookingSuccessRate != 0.9 {
		t.Errorf("BookingSuccessRate = %v, want 0.9", cfg.BookingSuccessRate)
	}
	if cfg.SessionTTLMinutes != 30 {
		t.Errorf("SessionTTLMinutes = %d, want 30", cfg.SessionTTLMinutes)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	os.Setenv("PORT", "9090")
	os.Setenv("BOOKING_SUCCESS_RATE", "0.5")
	defer clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.BookingSuccessRate != 0.5 {
		t.Errorf("BookingSuccessRate = %v, want 0.5", cfg.BookingSuccessRate)
	}
}

func TestLoad_CORSOriginsSplit(t *testing.T) {
	clearEnv(t)
	os.Setenv("CORS_ORIGINS", "http://a.example,http://b.example")
	defer clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
	if cfg.CORSOrigins[1] != "http://b.example" {
		t.Errorf("second origin = %q", cfg.CORSOrigins[1])
	}
}

func TestValidate_SuccessRateRange(t *testing.T) {
	cfg := &Config{BookingSuccessRate: 1.5, SessionTTLMinutes: 30}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for success rate above 1")
	}
	cfg = &Config{BookingSuccessRate: -0.1, SessionTTLMinutes: 30}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative success rate")
	}
}

func TestValidate_SessionTTL(t *testing.T) {
	cfg := &Config{BookingSuccessRate: 0.9, SessionTTLMinutes: 0}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero session TTL")
	}
}

func TestLoad_RejectsBadSuccessRate(t *testing.T) {
	clearEnv(t)
	os.Setenv("BOOKING_SUCCESS_RATE", "2")
	defer clearEnv(t)

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject out-of-range success rate")
	}
}
