package gateway

import (
	"context"
	"net/http"

	"github.com/hitoshi/footballctl/internal/model"
	"github.com/hitoshi/footballctl/internal/transport"
)

// FanGroupGateway はファングループエンドポイントへの操作を提供する。
type FanGroupGateway struct {
	doer      transport.Doer
	sanitizer ContentSanitizer
}

// NewFanGroupGateway はFanGroupGatewayを生成する。
func NewFanGroupGateway(doer transport.Doer, sanitizer ContentSanitizer) *FanGroupGateway {
	return &FanGroupGateway{doer: doer, sanitizer: sanitizer}
}

// List は全ファングループを取得する。
func (g *FanGroupGateway) List(ctx context.Context) ([]model.FanGroup, *model.Envelope, error) {
	var groups []model.FanGroup
	env, err := g.doer.Do(ctx, http.MethodGet, "/fan-groups", nil, nil, &groups)
	return groups, env, err
}

// Create はファングループを作成する。
func (g *FanGroupGateway) Create(ctx context.Context, group model.FanGroup) (*model.Envelope, error) {
	return g.doer.Do(ctx, http.MethodPost, "/fan-groups", group, nil, nil)
}

// CreatePost は指定グループに投稿を作成する。
// 投稿本文はHTMLを許容するため、送信前にサニタイズする。
func (g *FanGroupGateway) CreatePost(ctx context.Context, groupID string, post model.FanPost) (*model.Envelope, error) {
	if g.sanitizer != nil {
		post.Content = g.sanitizer.Sanitize(post.Content)
	}
	return g.doer.Do(ctx, http.MethodPost, "/fan-groups/"+groupID+"/posts", post, nil, nil)
}
