package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.ServerPort == "" {
		t.Fatalf("expected default server port")
	}
	if cfg.StorageBackend != "memory" {
		t.Fatalf("expected memory backend by default, got %q", cfg.StorageBackend)
	}
	if cfg.AuthDelayMs <= 0 {
		t.Fatalf("expected positive auth delay")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", ":9000")
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("AUTH_DELAY_MS", "0")

	cfg := Load()
	if cfg.ServerPort != ":9000" {
		t.Fatalf("expected override port")
	}
	if cfg.StorageBackend != "redis" {
		t.Fatalf("expected override backend")
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Fatalf("expected override redis")
	}
	if cfg.AuthDelayMs != 0 {
		t.Fatalf("expected override delay")
	}
}
