package model

import (
	"errors"
	"strings"
	"testing"
)

// TestAPIError_MessageAlwaysNonEmpty は全コンストラクタが非空のメッセージを生成することを検証する。
// Messageはそのままユーザーに表示されるため、空であってはならない。
func TestAPIError_MessageAlwaysNonEmpty(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
	}{
		{"認証失効", NewAuthExpiredError()},
		{"サーバー拒否（message付き）", NewServerRejectedError(400, "invalid payload")},
		{"サーバー拒否（message空）", NewServerRejectedError(500, "")},
		{"ネットワーク障害", NewRequestFailedError(errors.New("connection refused"))},
		{"不正レスポンス", NewMalformedResponseError(200)},
		{"不正メディアURL", NewInvalidMediaURLError("blocked IP address")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Message == "" {
				t.Errorf("Message が空: %+v", tt.err)
			}
			if tt.err.Code == "" {
				t.Errorf("Code が空: %+v", tt.err)
			}
			if tt.err.Kind == "" {
				t.Errorf("Kind が空: %+v", tt.err)
			}
		})
	}
}

// TestAPIError_Kinds は各コンストラクタの分類を検証する。
func TestAPIError_Kinds(t *testing.T) {
	if got := NewAuthExpiredError().Kind; got != KindAuth {
		t.Errorf("Kind = %q, want %q", got, KindAuth)
	}
	if got := NewServerRejectedError(400, "x").Kind; got != KindValidation {
		t.Errorf("Kind = %q, want %q", got, KindValidation)
	}
	if got := NewRequestFailedError(errors.New("x")).Kind; got != KindTransport {
		t.Errorf("Kind = %q, want %q", got, KindTransport)
	}
	if got := NewMalformedResponseError(502).Kind; got != KindTransport {
		t.Errorf("Kind = %q, want %q", got, KindTransport)
	}
	if got := NewInvalidMediaURLError("x").Kind; got != KindValidation {
		t.Errorf("Kind = %q, want %q", got, KindValidation)
	}
}

// TestServerRejectedError_PreservesServerMessage はサーバーのmessageがそのまま保持されることを検証する。
func TestServerRejectedError_PreservesServerMessage(t *testing.T) {
	err := NewServerRejectedError(400, "タイトルは必須です")
	if err.Message != "タイトルは必須です" {
		t.Errorf("Message = %q, want %q", err.Message, "タイトルは必須です")
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
}

// TestAPIError_ErrorFormat はerrorインターフェース実装の出力形式を検証する。
func TestAPIError_ErrorFormat(t *testing.T) {
	err := NewAuthExpiredError()
	if !strings.Contains(err.Error(), ErrCodeAuthExpired) {
		t.Errorf("Error() = %q, コード %q を含むべき", err.Error(), ErrCodeAuthExpired)
	}

	// errors.Asで型として取り出せる
	var apiErr *APIError
	var wrapped error = err
	if !errors.As(wrapped, &apiErr) {
		t.Error("errors.As で *APIError として取り出せない")
	}
}
