package model

import "fmt"

// ErrorKind は障害の分類を表す機械可読な種別。
// バックエンドのEnvelopeには対応するフィールドが存在しないため、
// クライアント側で分類して付与する（ワイヤフォーマットは変更しない）。
type ErrorKind string

const (
	// KindAuth は認証失敗（HTTP 401）。セッションは破棄済みであることを示す。
	KindAuth ErrorKind = "auth"
	// KindValidation はバリデーション・業務エラー。messageをそのまま表示する。
	KindValidation ErrorKind = "validation"
	// KindTransport はネットワーク障害・不正レスポンス。再試行の判断は呼び出し元が行う。
	KindTransport ErrorKind = "transport"
)

// 定義済みエラーコード
const (
	ErrCodeAuthExpired       = "AUTH_EXPIRED"
	ErrCodeServerRejected    = "SERVER_REJECTED"
	ErrCodeRequestFailed     = "REQUEST_FAILED"
	ErrCodeMalformedResponse = "MALFORMED_RESPONSE"
	ErrCodeInvalidMediaURL   = "INVALID_MEDIA_URL"
)

// APIError は統一エラーフォーマットを表す。
// Messageは失敗時に必ず非空であり、そのままユーザーに表示できる。
type APIError struct {
	Kind    ErrorKind // 機械可読な分類
	Code    string    // エラーコード
	Message string    // ユーザー向けメッセージ
	Status  int       // HTTPステータス（該当しない場合は0）
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAuthExpiredError は認証失効エラーを生成する。
// Transportの401分類パスからのみ生成される。
func NewAuthExpiredError() *APIError {
	return &APIError{
		Kind:    KindAuth,
		Code:    ErrCodeAuthExpired,
		Message: "認証の有効期限が切れました。再度ログインしてください。",
		Status:  401,
	}
}

// NewServerRejectedError はサーバーが非2xxで拒否した場合のエラーを生成する。
// messageが空の場合は汎用メッセージで補完する。
func NewServerRejectedError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("サーバーがリクエストを拒否しました（ステータス %d）。", status)
	}
	return &APIError{
		Kind:    KindValidation,
		Code:    ErrCodeServerRejected,
		Message: message,
		Status:  status,
	}
}

// NewRequestFailedError はネットワーク障害エラーを生成する。
func NewRequestFailedError(cause error) *APIError {
	return &APIError{
		Kind:    KindTransport,
		Code:    ErrCodeRequestFailed,
		Message: fmt.Sprintf("リクエストの送信に失敗しました: %v", cause),
	}
}

// NewMalformedResponseError は不正レスポンスエラーを生成する。
func NewMalformedResponseError(status int) *APIError {
	return &APIError{
		Kind:    KindTransport,
		Code:    ErrCodeMalformedResponse,
		Message: "サーバーの応答を解析できませんでした。しばらく待ってから再度お試しください。",
		Status:  status,
	}
}

// NewInvalidMediaURLError は動画・画像URLの事前検証エラーを生成する。
// リクエスト送信前にクライアント側で検出されるため、ネットワーク呼び出しは発生しない。
func NewInvalidMediaURLError(reason string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Code:    ErrCodeInvalidMediaURL,
		Message: fmt.Sprintf("無効なメディアURLです: %s", reason),
	}
}
