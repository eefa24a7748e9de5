package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/footballctl/internal/metrics"
	"github.com/hitoshi/footballctl/internal/model"
)

// TestObservationRouter_Healthz は死活エンドポイントを検証する。
func TestObservationRouter_Healthz(t *testing.T) {
	router := newObservationRouter(&statsSnapshot{}, prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "ok" {
		t.Errorf("body = %q, want %q", w.Body.String(), "ok")
	}
}

// TestObservationRouter_Dashboard は直近の集計がJSONで返ることを検証する。
func TestObservationRouter_Dashboard(t *testing.T) {
	snap := &statsSnapshot{}
	snap.set(model.DashboardStats{
		TotalPolls:   3,
		TotalMatches: 10,
		TotalVotes:   500,
	})

	router := newObservationRouter(snap, prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Stats     model.DashboardStats `json:"stats"`
		UpdatedAt time.Time            `json:"updatedAt"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("レスポンスのデコードに失敗: %v", err)
	}
	if resp.Stats.TotalPolls != 3 {
		t.Errorf("TotalPolls = %d, want 3", resp.Stats.TotalPolls)
	}
	if resp.Stats.TotalVotes != 500 {
		t.Errorf("TotalVotes = %d, want 500", resp.Stats.TotalVotes)
	}
	if resp.UpdatedAt.IsZero() {
		t.Error("updatedAt がゼロ値のまま")
	}
}

// TestObservationRouter_Metrics はPrometheusスクレイプエンドポイントを検証する。
func TestObservationRouter_Metrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := metrics.NewCollector(registry)
	c.RecordRequestSuccess(http.MethodGet)

	router := newObservationRouter(&statsSnapshot{}, registry)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "footballctl_request_success_total") {
		t.Error("スクレイプ結果にfootballctl_request_success_totalが含まれない")
	}
}

// TestStatsSnapshot_ConcurrentAccess はスナップショットの並行アクセス安全性を検証する。
func TestStatsSnapshot_ConcurrentAccess(t *testing.T) {
	snap := &statsSnapshot{}

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			snap.set(model.DashboardStats{TotalPolls: i})
		}
		close(done)
	}()

	for i := 0; i < 100; i++ {
		snap.get()
	}
	<-done

	stats, _ := snap.get()
	if stats.TotalPolls != 99 {
		t.Errorf("TotalPolls = %d, want 99", stats.TotalPolls)
	}
}
