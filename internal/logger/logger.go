// Package logger は構造化ログの初期化を提供する。
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup はJSON構造化ログ出力のslog.Loggerを生成して返す。
// verboseがtrueの場合はDebugレベルまで出力する。
func Setup(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// SetupDefault はJSON構造化ログ出力をグローバルロガーとして設定する。
// wがnilの場合はos.Stderrに出力する。CLIの通常出力（os.Stdout）と
// ログを混在させないため、デフォルトの出力先は標準エラーとする。
func SetupDefault(w io.Writer, verbose bool) {
	if w == nil {
		w = os.Stderr
	}
	slog.SetDefault(Setup(w, verbose))
}
