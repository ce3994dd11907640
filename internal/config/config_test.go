package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port: got %q, want 8080", cfg.Port)
	}
	if cfg.ExchangeRateTHB != 35.5 {
		t.Errorf("ExchangeRateTHB: got %v, want 35.5", cfg.ExchangeRateTHB)
	}
	if cfg.DBMaxOpenConns != 25 || cfg.DBMaxIdleConns != 5 {
		t.Errorf("pool defaults: got %d/%d, want 25/5", cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	}
}

func TestLoad_ExchangeRateOverride(t *testing.T) {
	t.Setenv("EXCHANGE_RATE_THB", "36.25")
	if cfg := Load(); cfg.ExchangeRateTHB != 36.25 {
		t.Errorf("ExchangeRateTHB: got %v, want 36.25", cfg.ExchangeRateTHB)
	}
}

func TestLoad_BadExchangeRateFallsBack(t *testing.T) {
	t.Setenv("EXCHANGE_RATE_THB", "not-a-rate")
	if cfg := Load(); cfg.ExchangeRateTHB != 35.5 {
		t.Errorf("ExchangeRateTHB: got %v, want fallback 35.5", cfg.ExchangeRateTHB)
	}
}
