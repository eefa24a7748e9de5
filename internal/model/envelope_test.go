package model

import (
	"encoding/json"
	"testing"
)

// TestEnvelope_DecodeLoginResponse はログインレスポンスのトップレベルtoken/userを検証する。
func TestEnvelope_DecodeLoginResponse(t *testing.T) {
	raw := `{
		"success": true,
		"token": "tok-123",
		"user": {"id": "u-1", "name": "管理者", "email": "admin@example.com", "role": "admin"}
	}`

	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("デコードに失敗: %v", err)
	}

	if !env.Success {
		t.Error("Success = false, want true")
	}
	if env.Token != "tok-123" {
		t.Errorf("Token = %q, want %q", env.Token, "tok-123")
	}
	if env.User == nil {
		t.Fatal("User = nil")
	}
	if !env.User.IsAdmin() {
		t.Errorf("IsAdmin() = false: %+v", env.User)
	}
}

// TestEnvelope_DecodeData はdataフィールドの型付きデコードを検証する。
func TestEnvelope_DecodeData(t *testing.T) {
	raw := `{"success": true, "data": [{"id": "m-1"}, {"id": "m-2"}]}`

	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("デコードに失敗: %v", err)
	}

	var matches []Match
	if err := env.DecodeData(&matches); err != nil {
		t.Fatalf("DecodeData() error = %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("len(matches) = %d, want 2", len(matches))
	}
}

// TestEnvelope_DecodeData_EmptyData はdataなしのEnvelopeで何も起きないことを検証する。
func TestEnvelope_DecodeData_EmptyData(t *testing.T) {
	var env Envelope
	var out []Match
	if err := env.DecodeData(&out); err != nil {
		t.Errorf("DecodeData() error = %v, want nil", err)
	}
	if out != nil {
		t.Errorf("out = %v, want nil", out)
	}
}

// TestEnvelope_FailureCarriesMessage は失敗Envelopeのmessage保持を検証する。
func TestEnvelope_FailureCarriesMessage(t *testing.T) {
	raw := `{"success": false, "message": "タイトルは必須です"}`

	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("デコードに失敗: %v", err)
	}
	if env.Success {
		t.Error("Success = true, want false")
	}
	if env.Message != "タイトルは必須です" {
		t.Errorf("Message = %q, want %q", env.Message, "タイトルは必須です")
	}
}

// TestUser_IsAdmin はロール判定を検証する。
func TestUser_IsAdmin(t *testing.T) {
	if !(User{Role: "admin"}).IsAdmin() {
		t.Error("role=admin で IsAdmin() = false")
	}
	if (User{Role: "user"}).IsAdmin() {
		t.Error("role=user で IsAdmin() = true")
	}
	if (User{}).IsAdmin() {
		t.Error("role未設定で IsAdmin() = true")
	}
}
