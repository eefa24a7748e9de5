package gateway

import (
	"context"
	"net/http"

	"github.com/hitoshi/footballctl/internal/model"
	"github.com/hitoshi/footballctl/internal/transport"
)

// LiveMatchGateway はライブ配信エンドポイントへの操作を提供する。
type LiveMatchGateway struct {
	doer     transport.Doer
	urlGuard MediaURLValidator
}

// NewLiveMatchGateway はLiveMatchGatewayを生成する。
func NewLiveMatchGateway(doer transport.Doer, urlGuard MediaURLValidator) *LiveMatchGateway {
	return &LiveMatchGateway{doer: doer, urlGuard: urlGuard}
}

// List は全ライブ配信を取得する。
func (g *LiveMatchGateway) List(ctx context.Context) ([]model.LiveMatch, *model.Envelope, error) {
	var matches []model.LiveMatch
	env, err := g.doer.Do(ctx, http.MethodGet, "/live-matches", nil, nil, &matches)
	return matches, env, err
}

// Create はライブ配信を作成する。配信URLは送信前に検証される。
func (g *LiveMatchGateway) Create(ctx context.Context, lm model.LiveMatch) (*model.Envelope, error) {
	if g.urlGuard != nil {
		if err := g.urlGuard.ValidateMediaURL(lm.YoutubeURL); err != nil {
			return nil, model.NewInvalidMediaURLError(err.Error())
		}
	}
	return g.doer.Do(ctx, http.MethodPost, "/live-matches", lm, nil, nil)
}

// Get は指定IDのライブ配信を取得する。
func (g *LiveMatchGateway) Get(ctx context.Context, id string) (model.LiveMatch, *model.Envelope, error) {
	var lm model.LiveMatch
	env, err := g.doer.Do(ctx, http.MethodGet, "/live-matches/"+id, nil, nil, &lm)
	return lm, env, err
}
