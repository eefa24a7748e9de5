// Package guard は保護された画面への入場判定を提供する。
package guard

import (
	"github.com/hitoshi/footballctl/internal/session"
)

// Decision は入場判定の結果を表す。
type Decision struct {
	Allow      bool
	RedirectTo string // Allowがfalseの場合の遷移先（ログイン画面）
}

// Guard はセッション状態から保護されたコンテンツへの入場可否を判定する。
// 判定結果はキャッシュせず、遷移のたびにEvaluateを呼び直すこと。
// バックグラウンドの401でセッションが非同期に破棄される可能性があるため。
type Guard struct {
	store     session.Reader
	loginPath string
}

// New はGuardを生成する。
func New(store session.Reader, loginPath string) *Guard {
	return &Guard{store: store, loginPath: loginPath}
}

// Evaluate は現在のセッション状態から入場判定を行う。
// トークンとユーザーが揃って存在し、かつロールが管理者の場合のみ許可する。
// それ以外は全てログイン画面へのリダイレクトとなる。
// セッション状態は読み取るだけで変更しない（非管理者でも破棄はしない。
// 破棄するかどうかは呼び出し元が決める）。
func (g *Guard) Evaluate() Decision {
	sess, ok := g.store.Get()
	if !ok {
		return Decision{Allow: false, RedirectTo: g.loginPath}
	}
	if sess.Token == "" || !sess.User.IsAdmin() {
		return Decision{Allow: false, RedirectTo: g.loginPath}
	}
	return Decision{Allow: true}
}
