package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hitoshi/footballctl/internal/model"
	"github.com/hitoshi/footballctl/internal/transport"
)

// ProductFilter は商品一覧取得のフィルタ条件を表す。
// ゼロ値はフィルタなし（全件取得）。
type ProductFilter struct {
	Category string
	Featured bool
}

// Query はフィルタ条件をクエリパラメータに変換する。
// 条件が1つもない場合はnilを返す。
func (f ProductFilter) Query() url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Featured {
		q.Set("featured", "true")
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

// ProductGateway はショップ商品エンドポイントへの操作を提供する。
type ProductGateway struct {
	doer transport.Doer
}

// NewProductGateway はProductGatewayを生成する。
func NewProductGateway(doer transport.Doer) *ProductGateway {
	return &ProductGateway{doer: doer}
}

// List はフィルタ条件に合致する商品一覧を取得する。
func (g *ProductGateway) List(ctx context.Context, filter ProductFilter) ([]model.Product, *model.Envelope, error) {
	var products []model.Product
	env, err := g.doer.Do(ctx, http.MethodGet, "/products", nil, filter.Query(), &products)
	return products, env, err
}

// Get は指定IDの商品を取得する。
func (g *ProductGateway) Get(ctx context.Context, id string) (model.Product, *model.Envelope, error) {
	var product model.Product
	env, err := g.doer.Do(ctx, http.MethodGet, "/products/"+id, nil, nil, &product)
	return product, env, err
}

// Create は商品を作成する。
func (g *ProductGateway) Create(ctx context.Context, p model.Product) (*model.Envelope, error) {
	return g.doer.Do(ctx, http.MethodPost, "/products", p, nil, nil)
}

// Update は指定IDの商品を更新する。
func (g *ProductGateway) Update(ctx context.Context, id string, p model.Product) (*model.Envelope, error) {
	return g.doer.Do(ctx, http.MethodPut, "/products/"+id, p, nil, nil)
}

// Delete は指定IDの商品を削除する。
func (g *ProductGateway) Delete(ctx context.Context, id string) (*model.Envelope, error) {
	return g.doer.Do(ctx, http.MethodDelete, "/products/"+id, nil, nil, nil)
}
