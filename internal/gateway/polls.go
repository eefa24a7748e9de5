package gateway

import (
	"context"
	"net/http"

	"github.com/hitoshi/footballctl/internal/model"
	"github.com/hitoshi/footballctl/internal/transport"
)

// PollGateway は投票エンドポイントへの操作を提供する。
type PollGateway struct {
	doer transport.Doer
}

// NewPollGateway はPollGatewayを生成する。
func NewPollGateway(doer transport.Doer) *PollGateway {
	return &PollGateway{doer: doer}
}

// List は全投票を取得する。
func (g *PollGateway) List(ctx context.Context) ([]model.Poll, *model.Envelope, error) {
	var polls []model.Poll
	env, err := g.doer.Do(ctx, http.MethodGet, "/polls", nil, nil, &polls)
	return polls, env, err
}

// GetByType は指定タイプ（daily-poll等）の投票を取得する。
// 該当タイプの投票が未作成の場合、dataはnullになる。
func (g *PollGateway) GetByType(ctx context.Context, pollType string) (*model.Poll, *model.Envelope, error) {
	var poll *model.Poll
	env, err := g.doer.Do(ctx, http.MethodGet, "/polls/"+pollType, nil, nil, &poll)
	return poll, env, err
}

// Create は投票を作成する。同タイプの投票が既に存在する場合の
// 置き換えはサーバー側の判断に委ねる。
func (g *PollGateway) Create(ctx context.Context, poll model.Poll) (*model.Envelope, error) {
	return g.doer.Do(ctx, http.MethodPost, "/polls", poll, nil, nil)
}
