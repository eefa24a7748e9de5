// Package dashboard はリソースファミリー横断の集計取得を提供する。
// 全ファミリーのフェッチを並行で発行し、個々の失敗は0件に置換して
// 全体を成立させる。1つのエンドポイントの障害がダッシュボード全体を
// 道連れにしてはならない。
package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hitoshi/footballctl/internal/metrics"
	"github.com/hitoshi/footballctl/internal/model"
)

// CountFunc は1リソースファミリーの件数を取得する関数。
type CountFunc func(ctx context.Context) (int, error)

// VotesFunc は統計集計から総投票数を取得する関数。
type VotesFunc func(ctx context.Context) (int, error)

// Sources は集計対象のリソースファミリーごとの取得関数をまとめた構造体。
// nilのフィールドは0件として扱われる。
type Sources struct {
	Polls            CountFunc
	Matches          CountFunc
	Highlights       CountFunc
	News             CountFunc
	LiveMatches      CountFunc
	FanGroups        CountFunc
	Products         CountFunc
	PredictionForums CountFunc
	Votes            VotesFunc
}

// Fetcher はダッシュボード集計を実行する。
type Fetcher struct {
	sources Sources
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewFetcher はFetcherを生成する。
func NewFetcher(sources Sources, logger *slog.Logger, rec metrics.Recorder) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Fetcher{sources: sources, logger: logger, metrics: rec}
}

// FetchStats は全リソースファミリーの件数を並行取得して集計を返す。
// 個々のフェッチの失敗はログに記録した上で0件に置換し、エラーとしては
// 返さない。ファミリー間の順序保証はない。
func (f *Fetcher) FetchStats(ctx context.Context) model.DashboardStats {
	var stats model.DashboardStats
	var failed int
	var mu sync.Mutex
	var wg sync.WaitGroup

	count := func(family string, fn CountFunc, dst *int) {
		if fn == nil {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := fn(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// 失敗したファミリーは0件に置換して他に波及させない
				f.logger.Warn("dashboard fetch failed, substituting zero",
					slog.String("family", family),
					slog.String("error", err.Error()),
				)
				failed++
				*dst = 0
				return
			}
			*dst = n
		}()
	}

	count("polls", f.sources.Polls, &stats.TotalPolls)
	count("matches", f.sources.Matches, &stats.TotalMatches)
	count("highlights", f.sources.Highlights, &stats.TotalHighlights)
	count("news", f.sources.News, &stats.TotalNews)
	count("live_matches", f.sources.LiveMatches, &stats.TotalLiveMatches)
	count("fan_groups", f.sources.FanGroups, &stats.TotalFanGroups)
	count("products", f.sources.Products, &stats.TotalProducts)
	count("prediction_forums", f.sources.PredictionForums, &stats.TotalPredictionForums)

	if f.sources.Votes != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := f.sources.Votes(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				f.logger.Warn("dashboard fetch failed, substituting zero",
					slog.String("family", "statistics"),
					slog.String("error", err.Error()),
				)
				failed++
				return
			}
			stats.TotalVotes = n
		}()
	}

	wg.Wait()
	f.metrics.RecordDashboardRefresh(failed)
	return stats
}
