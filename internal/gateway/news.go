package gateway

import (
	"context"
	"net/http"

	"github.com/hitoshi/footballctl/internal/model"
	"github.com/hitoshi/footballctl/internal/transport"
)

// NewsGateway はニュースエンドポイントへの操作を提供する。
// 記事本文はHTMLを許容するため、登録・更新前にサニタイズする。
type NewsGateway struct {
	doer      transport.Doer
	sanitizer ContentSanitizer
}

// NewNewsGateway はNewsGatewayを生成する。
func NewNewsGateway(doer transport.Doer, sanitizer ContentSanitizer) *NewsGateway {
	return &NewsGateway{doer: doer, sanitizer: sanitizer}
}

// List は全ニュースを取得する。
func (g *NewsGateway) List(ctx context.Context) ([]model.NewsItem, *model.Envelope, error) {
	var items []model.NewsItem
	env, err := g.doer.Do(ctx, http.MethodGet, "/news", nil, nil, &items)
	return items, env, err
}

// Create はニュースを作成する。本文はサニタイズ済みの内容が送信される。
func (g *NewsGateway) Create(ctx context.Context, item model.NewsItem) (*model.Envelope, error) {
	item.Description = g.sanitize(item.Description)
	return g.doer.Do(ctx, http.MethodPost, "/news", item, nil, nil)
}

// Update は指定IDのニュースを更新する。
func (g *NewsGateway) Update(ctx context.Context, id string, item model.NewsItem) (*model.Envelope, error) {
	item.Description = g.sanitize(item.Description)
	return g.doer.Do(ctx, http.MethodPut, "/news/"+id, item, nil, nil)
}

// Delete は指定IDのニュースを削除する。
func (g *NewsGateway) Delete(ctx context.Context, id string) (*model.Envelope, error) {
	return g.doer.Do(ctx, http.MethodDelete, "/news/"+id, nil, nil, nil)
}

func (g *NewsGateway) sanitize(raw string) string {
	if g.sanitizer == nil {
		return raw
	}
	return g.sanitizer.Sanitize(raw)
}
