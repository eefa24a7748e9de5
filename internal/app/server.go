package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/footballctl/internal/metrics"
	"github.com/hitoshi/footballctl/internal/model"
)

// statsSnapshot はwatchモードが保持する直近の集計。
// ティッカーゴルーチンが書き、HTTPハンドラーが読む。
type statsSnapshot struct {
	mu        sync.RWMutex
	stats     model.DashboardStats
	updatedAt time.Time
}

// set は集計を更新する。
func (s *statsSnapshot) set(stats model.DashboardStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = stats
	s.updatedAt = time.Now()
}

// get は直近の集計と更新時刻を返す。
func (s *statsSnapshot) get() (model.DashboardStats, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, s.updatedAt
}

// newObservationRouter はwatchモードの観測用ルーターを構築する。
// /healthz（死活）、/metrics（Prometheusスクレイプ）、
// /dashboard（直近の集計JSON）を提供する。
func newObservationRouter(snap *statsSnapshot, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Handle("/metrics", metrics.Handler(gatherer))

	r.Get("/dashboard", func(w http.ResponseWriter, _ *http.Request) {
		stats, updatedAt := snap.get()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			Stats     model.DashboardStats `json:"stats"`
			UpdatedAt time.Time            `json:"updatedAt"`
		}{stats, updatedAt})
	})

	return r
}

// runWatch はwatchモードで起動する。
// ダッシュボード集計を定期更新しつつ、観測用HTTPサーバーを提供する。
// SIGINTまたはSIGTERMシグナルを受信するとグレースフルシャットダウンを行う。
func runWatch(w io.Writer, env *runtimeEnv) error {
	if err := requireAdmin(w, env); err != nil {
		return err
	}

	fetcher := newFetcher(env, env.collector)
	snap := &statsSnapshot{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 集計の定期更新。起動直後に1回実行する。
	go func() {
		snap.set(fetcher.FetchStats(ctx))

		ticker := time.NewTicker(env.cfg.WatchInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// ガードは遷移のたびに評価し直す。バックグラウンドの401で
				// セッションが破棄されていたら更新を止める。
				if decision := env.guard.Evaluate(); !decision.Allow {
					slog.Warn("session lost during watch, stopping refresh",
						slog.String("redirect_to", decision.RedirectTo),
					)
					cancel()
					return
				}
				snap.set(fetcher.FetchStats(ctx))
			}
		}
	}()

	server := &http.Server{
		Addr:         ":" + env.cfg.ServerPort,
		Handler:      newObservationRouter(snap, env.registry),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// グレースフルシャットダウンのためのシグナルハンドリング
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("observation server starting",
			slog.String("addr", server.Addr),
			slog.Duration("watch_interval", env.cfg.WatchInterval),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server listen error", slog.String("error", err.Error()))
		}
	}()

	select {
	case <-stop:
	case <-ctx.Done():
		// セッション喪失による停止
	}
	slog.Info("shutting down observation server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("observation server stopped gracefully")
	return nil
}
