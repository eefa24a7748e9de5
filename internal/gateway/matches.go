package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hitoshi/footballctl/internal/model"
	"github.com/hitoshi/footballctl/internal/transport"
)

// MatchFilter は試合一覧取得のフィルタ条件を表す。
// ゼロ値はフィルタなし（全件取得）。
type MatchFilter struct {
	LeagueType string // international, local, inter-quarter
	Status     string
}

// Query はフィルタ条件をクエリパラメータに変換する。
// 条件が1つもない場合はnilを返す。
func (f MatchFilter) Query() url.Values {
	q := url.Values{}
	if f.LeagueType != "" {
		q.Set("leagueType", f.LeagueType)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

// MatchGateway は試合エンドポイントへの操作を提供する。
type MatchGateway struct {
	doer transport.Doer
}

// NewMatchGateway はMatchGatewayを生成する。
func NewMatchGateway(doer transport.Doer) *MatchGateway {
	return &MatchGateway{doer: doer}
}

// List はフィルタ条件に合致する試合一覧を取得する。
func (g *MatchGateway) List(ctx context.Context, filter MatchFilter) ([]model.Match, *model.Envelope, error) {
	var matches []model.Match
	env, err := g.doer.Do(ctx, http.MethodGet, "/matches", nil, filter.Query(), &matches)
	return matches, env, err
}

// Today は当日の試合一覧を取得する。
func (g *MatchGateway) Today(ctx context.Context, filter MatchFilter) ([]model.Match, *model.Envelope, error) {
	var matches []model.Match
	env, err := g.doer.Do(ctx, http.MethodGet, "/matches/today", nil, filter.Query(), &matches)
	return matches, env, err
}

// Create は試合を作成する。
func (g *MatchGateway) Create(ctx context.Context, match model.Match) (*model.Envelope, error) {
	return g.doer.Do(ctx, http.MethodPost, "/matches", match, nil, nil)
}

// Get は指定IDの試合を取得する。
func (g *MatchGateway) Get(ctx context.Context, id string) (model.Match, *model.Envelope, error) {
	var match model.Match
	env, err := g.doer.Do(ctx, http.MethodGet, "/matches/"+id, nil, nil, &match)
	return match, env, err
}

// UpdateScore は試合スコアを更新する。
func (g *MatchGateway) UpdateScore(ctx context.Context, id string, homeScore, awayScore int) (*model.Envelope, error) {
	body := model.ScoreUpdate{HomeScore: homeScore, AwayScore: awayScore}
	return g.doer.Do(ctx, http.MethodPut, "/matches/"+id+"/score", body, nil, nil)
}
