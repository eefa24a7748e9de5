// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder はメトリクス収集のインターフェース。
// Transport層とダッシュボードから利用する。
type Recorder interface {
	RecordRequestSuccess(method string)
	RecordRequestFailure(method string, kind string)
	RecordHTTPStatus(statusCode int)
	RecordRequestLatency(duration time.Duration)
	RecordAuthExpired()
	RecordDashboardRefresh(failedFamilies int)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	reqSuccess       *prometheus.CounterVec
	reqFail          *prometheus.CounterVec
	httpStatus       *prometheus.CounterVec
	reqLatency       prometheus.Histogram
	authExpired      prometheus.Counter
	dashboardRefresh prometheus.Counter
	dashboardFailed  prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		reqSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "footballctl_request_success_total",
			Help: "APIリクエスト成功の合計数",
		}, []string{"method"}),
		reqFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "footballctl_request_fail_total",
			Help: "APIリクエスト失敗の合計数（分類別）",
		}, []string{"method", "kind"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "footballctl_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		reqLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "footballctl_request_latency_seconds",
			Help:    "APIリクエストのレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		authExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "footballctl_auth_expired_total",
			Help: "401によるセッション破棄の合計数",
		}),
		dashboardRefresh: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "footballctl_dashboard_refresh_total",
			Help: "ダッシュボード集計の実行回数",
		}),
		dashboardFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "footballctl_dashboard_failed_families_total",
			Help: "集計時に0件に置換されたリソースファミリーの合計数",
		}),
	}

	reg.MustRegister(
		c.reqSuccess,
		c.reqFail,
		c.httpStatus,
		c.reqLatency,
		c.authExpired,
		c.dashboardRefresh,
		c.dashboardFailed,
	)

	return c
}

// RecordRequestSuccess はリクエスト成功を記録する。
func (c *Collector) RecordRequestSuccess(method string) {
	c.reqSuccess.WithLabelValues(method).Inc()
}

// RecordRequestFailure はリクエスト失敗を分類付きで記録する。
func (c *Collector) RecordRequestFailure(method string, kind string) {
	c.reqFail.WithLabelValues(method, kind).Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestLatency はリクエストのレイテンシを記録する。
func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.reqLatency.Observe(duration.Seconds())
}

// RecordAuthExpired は401によるセッション破棄を記録する。
func (c *Collector) RecordAuthExpired() {
	c.authExpired.Inc()
}

// RecordDashboardRefresh はダッシュボード集計の実行を記録する。
func (c *Collector) RecordDashboardRefresh(failedFamilies int) {
	c.dashboardRefresh.Inc()
	c.dashboardFailed.Add(float64(failedFamilies))
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop は何も記録しないRecorder。メトリクスが不要な単発コマンドで使用する。
type Nop struct{}

func (Nop) RecordRequestSuccess(method string)               {}
func (Nop) RecordRequestFailure(method string, kind string)  {}
func (Nop) RecordHTTPStatus(statusCode int)                  {}
func (Nop) RecordRequestLatency(duration time.Duration)      {}
func (Nop) RecordAuthExpired()                               {}
func (Nop) RecordDashboardRefresh(failedFamilies int)        {}
