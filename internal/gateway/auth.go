package gateway

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hitoshi/footballctl/internal/model"
	"github.com/hitoshi/footballctl/internal/transport"
)

// SessionWriter は認証ゲートウェイが必要とするセッション操作。
type SessionWriter interface {
	Set(token string, user model.User) error
	Clear() error
}

// LoginRequest はPOST /auth/loginのリクエストボディを表す。
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthGateway は認証エンドポイントへの操作を提供する。
// 全ゲートウェイの中で唯一セッションストアへの書き込みを行う。
type AuthGateway struct {
	doer    transport.Doer
	session SessionWriter
}

// NewAuthGateway はAuthGatewayを生成する。
func NewAuthGateway(doer transport.Doer, session SessionWriter) *AuthGateway {
	return &AuthGateway{doer: doer, session: session}
}

// Login はメールアドレスとパスワードで認証する。
// success:trueかつtokenを含むEnvelopeを受け取った場合のみ、
// Envelopeを返す前にセッションストアへtokenとuserを保存する。
// success:falseのEnvelopeはセッションに触れずそのまま返す
// （ログイン前なので破棄すべきセッションも存在しない）。
func (g *AuthGateway) Login(ctx context.Context, email, password string) (*model.Envelope, error) {
	body := LoginRequest{Email: email, Password: password}
	env, err := g.doer.Do(ctx, http.MethodPost, "/auth/login", body, nil, nil)
	if err != nil {
		return env, err
	}

	if env.Success && env.Token != "" && env.User != nil {
		if err := g.session.Set(env.Token, *env.User); err != nil {
			return env, err
		}
		slog.Info("logged in",
			slog.String("user_id", env.User.ID),
			slog.String("role", env.User.Role),
		)
	}

	return env, nil
}

// Logout はセッションストアを破棄する。ネットワーク呼び出しは行わない。
// トークンはベアラー方式でサーバー側に状態を持たないため、
// クライアント側の破棄だけでログアウトが完結する。
func (g *AuthGateway) Logout() error {
	return g.session.Clear()
}

// Me は現在の認証ユーザーを取得する。
func (g *AuthGateway) Me(ctx context.Context) (model.User, *model.Envelope, error) {
	var user model.User
	env, err := g.doer.Do(ctx, http.MethodGet, "/auth/me", nil, nil, &user)
	return user, env, err
}
