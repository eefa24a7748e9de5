// Package gateway はリソースファミリーごとの型付きAPI操作を提供する。
//
// 各ゲートウェイはTransportの薄いラッパーであり、パスとクエリの構築、
// リクエストボディの型付けのみを担う。Envelopeは検査せずそのまま返し、
// success:falseの扱いは呼び出し元に委ねる。Transportのエラーも
// 握りつぶさず伝播する。セッションへの副作用を持つのは認証ゲートウェイ
// （ログイン成功時のSetとログアウト時のClear）だけである。
package gateway

import "github.com/hitoshi/footballctl/internal/transport"

// Set は全リソースファミリーのゲートウェイをまとめた束。
// アプリケーション起動時に1回構築する。
type Set struct {
	Auth             *AuthGateway
	Polls            *PollGateway
	Matches          *MatchGateway
	Highlights       *HighlightGateway
	News             *NewsGateway
	LiveMatches      *LiveMatchGateway
	FanGroups        *FanGroupGateway
	Statistics       *StatisticsGateway
	Products         *ProductGateway
	PredictionForums *PredictionForumGateway
	Upload           *UploadGateway
}

// Deps はNewSetに必要な依存関係をまとめた構造体。
type Deps struct {
	Doer      transport.Doer
	Session   SessionWriter
	Sanitizer ContentSanitizer
	URLGuard  MediaURLValidator
}

// NewSet は全ゲートウェイを生成する。
func NewSet(deps Deps) *Set {
	return &Set{
		Auth:             NewAuthGateway(deps.Doer, deps.Session),
		Polls:            NewPollGateway(deps.Doer),
		Matches:          NewMatchGateway(deps.Doer),
		Highlights:       NewHighlightGateway(deps.Doer, deps.URLGuard),
		News:             NewNewsGateway(deps.Doer, deps.Sanitizer),
		LiveMatches:      NewLiveMatchGateway(deps.Doer, deps.URLGuard),
		FanGroups:        NewFanGroupGateway(deps.Doer, deps.Sanitizer),
		Statistics:       NewStatisticsGateway(deps.Doer),
		Products:         NewProductGateway(deps.Doer),
		PredictionForums: NewPredictionForumGateway(deps.Doer),
		Upload:           NewUploadGateway(deps.Doer),
	}
}

// ContentSanitizer はHTML本文のサニタイズ機能。
// security.ContentSanitizerServiceを満たす。
type ContentSanitizer interface {
	Sanitize(rawHTML string) string
}

// MediaURLValidator はメディアURLの事前検証機能。
// security.URLGuardServiceのValidateMediaURLを満たす。
type MediaURLValidator interface {
	ValidateMediaURL(rawURL string) error
}
