package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "vct.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}
}

func writeGlobalConfig(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "vct")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write global config: %v", err)
	}
}

func TestLoad_MissingFilesReturnsEmptyConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvBaseURL, "")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.API.BaseURL != "" {
		t.Errorf("expected empty base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 0 {
		t.Errorf("expected zero timeout, got %d", cfg.API.TimeoutSeconds)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvBaseURL, "")

	dir := t.TempDir()
	writeProjectConfig(t, dir, `
[api]
base-url = "http://workshop.example/api"
timeout-seconds = 15
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.API.BaseURL != "http://workshop.example/api" {
		t.Errorf("unexpected base URL %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 15 {
		t.Errorf("unexpected timeout %d", cfg.API.TimeoutSeconds)
	}
}

func TestLoad_ProjectWinsOverGlobal(t *testing.T) {
	writeGlobalConfig(t, `
[api]
base-url = "http://global.example/api"
timeout-seconds = 30
`)
	t.Setenv(EnvBaseURL, "")

	dir := t.TempDir()
	writeProjectConfig(t, dir, `
[api]
base-url = "http://project.example/api"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.API.BaseURL != "http://project.example/api" {
		t.Errorf("expected the project base URL to win, got %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("expected the global timeout to survive, got %d", cfg.API.TimeoutSeconds)
	}
}

func TestLoad_EnvOverridesBaseURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	writeProjectConfig(t, dir, `
[api]
base-url = "http://project.example/api"
`)
	t.Setenv(EnvBaseURL, "http://127.0.0.1:9999/api")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.API.BaseURL != "http://127.0.0.1:9999/api" {
		t.Errorf("expected the env override to win, got %q", cfg.API.BaseURL)
	}
}

func TestAPITimeout(t *testing.T) {
	if got := (API{}).Timeout(); got != 0 {
		t.Errorf("expected zero duration, got %v", got)
	}
	if got := (API{TimeoutSeconds: 5}).Timeout().Seconds(); got != 5 {
		t.Errorf("expected 5 seconds, got %v", got)
	}
}
