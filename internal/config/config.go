// Package config は環境変数からのアプリケーション設定の読み込みを提供する。
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// API
	APIBaseURL string

	// Session
	CredentialsPath string
	LoginPath       string

	// Transport
	RequestRate  float64 // 送信レート（req/sec）
	RequestBurst int

	// Upload
	UploadFolder  string
	UploadMaxSize int64

	// Watch
	WatchInterval time.Duration
	ServerPort    string

	// Logging
	Verbose bool
}

// Load は環境変数からConfigを読み込む。
// 必須環境変数が未設定の場合はエラーを返す。
func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string

	cfg.APIBaseURL = os.Getenv("API_BASE_URL")
	if cfg.APIBaseURL == "" {
		missing = append(missing, "API_BASE_URL")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	// Optional fields with defaults
	cfg.CredentialsPath = getEnvString("CREDENTIALS_PATH", defaultCredentialsPath())
	cfg.LoginPath = getEnvString("LOGIN_PATH", "/login")
	cfg.RequestRate = getEnvFloat("REQUEST_RATE", 10)
	cfg.RequestBurst = getEnvInt("REQUEST_BURST", 20)
	cfg.UploadFolder = getEnvString("UPLOAD_FOLDER", "football-app")
	cfg.UploadMaxSize = getEnvInt64("UPLOAD_MAX_SIZE", 5242880)
	cfg.WatchInterval = getEnvDuration("WATCH_INTERVAL", 1*time.Minute)
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.Verbose = getEnvBool("VERBOSE", false)

	return cfg, nil
}

// defaultCredentialsPath は認証情報ファイルのデフォルト配置先を返す。
// ユーザー設定ディレクトリが特定できない場合はカレントディレクトリ配下に置く。
func defaultCredentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".footballctl", "credentials.json")
	}
	return filepath.Join(dir, "footballctl", "credentials.json")
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvInt64(key string, defaultVal int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
