package gateway

import (
	"context"
	"net/http"

	"github.com/hitoshi/footballctl/internal/model"
	"github.com/hitoshi/footballctl/internal/transport"
)

// StatisticsGateway は統計集計エンドポイントへの操作を提供する。
type StatisticsGateway struct {
	doer transport.Doer
}

// NewStatisticsGateway はStatisticsGatewayを生成する。
func NewStatisticsGateway(doer transport.Doer) *StatisticsGateway {
	return &StatisticsGateway{doer: doer}
}

// Get は投票・試合の統計集計を取得する。
func (g *StatisticsGateway) Get(ctx context.Context) (model.Statistics, *model.Envelope, error) {
	var stats model.Statistics
	env, err := g.doer.Do(ctx, http.MethodGet, "/statistics", nil, nil, &stats)
	return stats, env, err
}
