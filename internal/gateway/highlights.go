package gateway

import (
	"context"
	"net/http"

	"github.com/hitoshi/footballctl/internal/model"
	"github.com/hitoshi/footballctl/internal/transport"
)

// HighlightGateway はハイライト動画エンドポイントへの操作を提供する。
// 登録・更新時には動画URLとサムネイルURLを事前検証し、
// 危険なURLはネットワーク呼び出しなしで拒否する。
type HighlightGateway struct {
	doer     transport.Doer
	urlGuard MediaURLValidator
}

// NewHighlightGateway はHighlightGatewayを生成する。
func NewHighlightGateway(doer transport.Doer, urlGuard MediaURLValidator) *HighlightGateway {
	return &HighlightGateway{doer: doer, urlGuard: urlGuard}
}

// List は全ハイライトを取得する。
func (g *HighlightGateway) List(ctx context.Context) ([]model.Highlight, *model.Envelope, error) {
	var highlights []model.Highlight
	env, err := g.doer.Do(ctx, http.MethodGet, "/highlights", nil, nil, &highlights)
	return highlights, env, err
}

// Create はハイライトを作成する。
func (g *HighlightGateway) Create(ctx context.Context, h model.Highlight) (*model.Envelope, error) {
	if err := g.validate(h); err != nil {
		return nil, err
	}
	return g.doer.Do(ctx, http.MethodPost, "/highlights", h, nil, nil)
}

// Update は指定IDのハイライトを更新する。
func (g *HighlightGateway) Update(ctx context.Context, id string, h model.Highlight) (*model.Envelope, error) {
	if err := g.validate(h); err != nil {
		return nil, err
	}
	return g.doer.Do(ctx, http.MethodPut, "/highlights/"+id, h, nil, nil)
}

// Delete は指定IDのハイライトを削除する。
func (g *HighlightGateway) Delete(ctx context.Context, id string) (*model.Envelope, error) {
	return g.doer.Do(ctx, http.MethodDelete, "/highlights/"+id, nil, nil, nil)
}

// validate は送信前のメディアURL検証を行う。
func (g *HighlightGateway) validate(h model.Highlight) error {
	if g.urlGuard == nil {
		return nil
	}
	if err := g.urlGuard.ValidateMediaURL(h.YoutubeURL); err != nil {
		return model.NewInvalidMediaURLError(err.Error())
	}
	if err := g.urlGuard.ValidateMediaURL(h.Thumbnail); err != nil {
		return model.NewInvalidMediaURLError(err.Error())
	}
	return nil
}
