package gateway

import (
	"context"
	"io"

	"github.com/hitoshi/footballctl/internal/model"
	"github.com/hitoshi/footballctl/internal/transport"
)

// UploadGateway は画像アップロードエンドポイントへの操作を提供する。
type UploadGateway struct {
	doer transport.Doer
}

// NewUploadGateway はUploadGatewayを生成する。
func NewUploadGateway(doer transport.Doer) *UploadGateway {
	return &UploadGateway{doer: doer}
}

// Image は画像をアップロードし、保存先URLを返す。
// 返却されたURLは後続のリソース登録ペイロードに埋め込んで使用する。
// アップロード後、ローカルのファイル状態は一切保持しない。
func (g *UploadGateway) Image(ctx context.Context, filename string, file io.Reader, folder string) (model.UploadResult, *model.Envelope, error) {
	var result model.UploadResult
	env, err := g.doer.Upload(ctx, "/upload", filename, file, folder, &result)
	return result, env, err
}
