package config

import (
	"strings"
	"testing"
	"time"
)

// clearEnv はテストに影響する環境変数をすべて未設定にする。
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"API_BASE_URL",
		"CREDENTIALS_PATH",
		"LOGIN_PATH",
		"REQUEST_RATE",
		"REQUEST_BURST",
		"UPLOAD_FOLDER",
		"UPLOAD_MAX_SIZE",
		"WATCH_INTERVAL",
		"SERVER_PORT",
		"VERBOSE",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

// TestLoad_MissingRequired は必須環境変数が未設定の場合のエラーを検証する。
func TestLoad_MissingRequired(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	if err == nil {
		t.Fatal("API_BASE_URL未設定でLoad() = nil, エラーを期待")
	}
	if !strings.Contains(err.Error(), "API_BASE_URL") {
		t.Errorf("エラーメッセージに変数名が含まれない: %v", err)
	}
}

// TestLoad_Defaults はオプション項目のデフォルト値を検証する。
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "https://api.example.com/api")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIBaseURL != "https://api.example.com/api" {
		t.Errorf("APIBaseURL = %q, want %q", cfg.APIBaseURL, "https://api.example.com/api")
	}
	if cfg.LoginPath != "/login" {
		t.Errorf("LoginPath = %q, want %q", cfg.LoginPath, "/login")
	}
	if cfg.CredentialsPath == "" {
		t.Error("CredentialsPath が空")
	}
	if !strings.Contains(cfg.CredentialsPath, "footballctl") {
		t.Errorf("CredentialsPath = %q, footballctl配下を期待", cfg.CredentialsPath)
	}
	if cfg.RequestRate != 10 {
		t.Errorf("RequestRate = %v, want 10", cfg.RequestRate)
	}
	if cfg.RequestBurst != 20 {
		t.Errorf("RequestBurst = %d, want 20", cfg.RequestBurst)
	}
	if cfg.UploadFolder != "football-app" {
		t.Errorf("UploadFolder = %q, want %q", cfg.UploadFolder, "football-app")
	}
	if cfg.UploadMaxSize != 5242880 {
		t.Errorf("UploadMaxSize = %d, want 5242880", cfg.UploadMaxSize)
	}
	if cfg.WatchInterval != time.Minute {
		t.Errorf("WatchInterval = %v, want 1m", cfg.WatchInterval)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want %q", cfg.ServerPort, "8080")
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false")
	}
}

// TestLoad_Overrides は環境変数による上書きを検証する。
func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "http://localhost:3000/api")
	t.Setenv("CREDENTIALS_PATH", "/tmp/creds.json")
	t.Setenv("LOGIN_PATH", "/signin")
	t.Setenv("REQUEST_RATE", "2.5")
	t.Setenv("REQUEST_BURST", "5")
	t.Setenv("UPLOAD_FOLDER", "staging-app")
	t.Setenv("UPLOAD_MAX_SIZE", "1048576")
	t.Setenv("WATCH_INTERVAL", "30s")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("VERBOSE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CredentialsPath != "/tmp/creds.json" {
		t.Errorf("CredentialsPath = %q, want %q", cfg.CredentialsPath, "/tmp/creds.json")
	}
	if cfg.LoginPath != "/signin" {
		t.Errorf("LoginPath = %q, want %q", cfg.LoginPath, "/signin")
	}
	if cfg.RequestRate != 2.5 {
		t.Errorf("RequestRate = %v, want 2.5", cfg.RequestRate)
	}
	if cfg.RequestBurst != 5 {
		t.Errorf("RequestBurst = %d, want 5", cfg.RequestBurst)
	}
	if cfg.UploadFolder != "staging-app" {
		t.Errorf("UploadFolder = %q, want %q", cfg.UploadFolder, "staging-app")
	}
	if cfg.UploadMaxSize != 1048576 {
		t.Errorf("UploadMaxSize = %d, want 1048576", cfg.UploadMaxSize)
	}
	if cfg.WatchInterval != 30*time.Second {
		t.Errorf("WatchInterval = %v, want 30s", cfg.WatchInterval)
	}
	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want %q", cfg.ServerPort, "9090")
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

// TestLoad_InvalidValuesFallBack は不正な値がデフォルトにフォールバックすることを検証する。
func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("REQUEST_RATE", "fast")
	t.Setenv("REQUEST_BURST", "many")
	t.Setenv("UPLOAD_MAX_SIZE", "big")
	t.Setenv("WATCH_INTERVAL", "soon")
	t.Setenv("VERBOSE", "maybe")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.RequestRate != 10 {
		t.Errorf("RequestRate = %v, want 10", cfg.RequestRate)
	}
	if cfg.RequestBurst != 20 {
		t.Errorf("RequestBurst = %d, want 20", cfg.RequestBurst)
	}
	if cfg.UploadMaxSize != 5242880 {
		t.Errorf("UploadMaxSize = %d, want 5242880", cfg.UploadMaxSize)
	}
	if cfg.WatchInterval != time.Minute {
		t.Errorf("WatchInterval = %v, want 1m", cfg.WatchInterval)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false")
	}
}
