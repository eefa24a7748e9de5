package gateway

import (
	"context"
	"net/http"

	"github.com/hitoshi/footballctl/internal/model"
	"github.com/hitoshi/footballctl/internal/transport"
)

// PredictionForumGateway は予想フォーラムエンドポイントへの操作を提供する。
type PredictionForumGateway struct {
	doer transport.Doer
}

// NewPredictionForumGateway はPredictionForumGatewayを生成する。
func NewPredictionForumGateway(doer transport.Doer) *PredictionForumGateway {
	return &PredictionForumGateway{doer: doer}
}

// List は全予想フォーラムを取得する。非アクティブ化済みのフォーラムを
// 含むかどうかはサーバー側の仕様に従う。
func (g *PredictionForumGateway) List(ctx context.Context) ([]model.PredictionForum, *model.Envelope, error) {
	var forums []model.PredictionForum
	env, err := g.doer.Do(ctx, http.MethodGet, "/prediction-forums", nil, nil, &forums)
	return forums, env, err
}

// ListUsers はフォーラムのヘッドユーザーに指定可能なユーザー一覧を取得する。
func (g *PredictionForumGateway) ListUsers(ctx context.Context) ([]model.User, *model.Envelope, error) {
	var users []model.User
	env, err := g.doer.Do(ctx, http.MethodGet, "/prediction-forums/users", nil, nil, &users)
	return users, env, err
}

// Create は予想フォーラムを作成する。
func (g *PredictionForumGateway) Create(ctx context.Context, forum model.PredictionForum) (*model.Envelope, error) {
	return g.doer.Do(ctx, http.MethodPost, "/prediction-forums", forum, nil, nil)
}

// Delete は指定IDのフォーラムを非アクティブ化する。
// 物理削除ではなくサーバー側でのソフトデリートとなる。
func (g *PredictionForumGateway) Delete(ctx context.Context, id string) (*model.Envelope, error) {
	return g.doer.Do(ctx, http.MethodDelete, "/prediction-forums/"+id, nil, nil, nil)
}
