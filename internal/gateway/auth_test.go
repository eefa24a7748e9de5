package gateway

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hitoshi/footballctl/internal/model"
	"github.com/hitoshi/footballctl/internal/session"
)

func newTestSession(t *testing.T) *session.Store {
	t.Helper()
	s, err := session.NewStore(filepath.Join(t.TempDir(), "credentials.json"))
	if err != nil {
		t.Fatalf("NewStore がエラーを返した: %v", err)
	}
	return s
}

func TestAuthGateway_Login_SuccessPopulatesSession(t *testing.T) {
	admin := model.User{ID: "u1", Email: "admin@example.com", Role: "admin"}
	doer := &fakeDoer{env: &model.Envelope{Success: true, Token: "abc", User: &admin}}
	store := newTestSession(t)
	g := NewAuthGateway(doer, store)

	env, err := g.Login(context.Background(), "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("Login がエラーを返した: %v", err)
	}

	if doer.method != "POST" || doer.path != "/auth/login" {
		t.Errorf("リクエスト = %s %s, want POST /auth/login", doer.method, doer.path)
	}
	body, ok := doer.body.(LoginRequest)
	if !ok {
		t.Fatalf("body の型 = %T, want LoginRequest", doer.body)
	}
	if body.Email != "admin@example.com" || body.Password != "secret" {
		t.Errorf("認証情報 = %s/%s, want admin@example.com/secret", body.Email, body.Password)
	}

	// Envelopeは加工せず返す
	if !env.Success || env.Token != "abc" {
		t.Errorf("Envelope = %+v, want success+token", env)
	}

	// セッションにはtokenとuserの組が保存される
	sess, ok := store.Get()
	if !ok {
		t.Fatal("ログイン成功後にセッションが不在")
	}
	if sess.Token != "abc" {
		t.Errorf("Token = %s, want abc", sess.Token)
	}
	if sess.User.Role != "admin" {
		t.Errorf("Role = %s, want admin", sess.User.Role)
	}
}

func TestAuthGateway_Login_FailureLeavesSessionAbsent(t *testing.T) {
	doer := &fakeDoer{env: &model.Envelope{Success: false, Message: "invalid credentials"}}
	store := newTestSession(t)
	g := NewAuthGateway(doer, store)

	env, err := g.Login(context.Background(), "x@example.com", "wrong")
	if err != nil {
		t.Fatalf("Login がエラーを返した: %v", err)
	}

	// success:falseはそのまま返し、セッションには触れない
	if env.Success {
		t.Error("Success = true, want false")
	}
	if env.Message != "invalid credentials" {
		t.Errorf("Message = %s, want invalid credentials", env.Message)
	}
	if _, ok := store.Get(); ok {
		t.Error("ログイン失敗後にセッションが存在する")
	}
}

func TestAuthGateway_Login_NonAdminStillStored(t *testing.T) {
	// 非管理者の拒否はゲートウェイではなく呼び出し元の責務。
	// ゲートウェイはsuccess+tokenなら保存する。
	viewer := model.User{ID: "u2", Role: "viewer"}
	doer := &fakeDoer{env: &model.Envelope{Success: true, Token: "xyz", User: &viewer}}
	store := newTestSession(t)
	g := NewAuthGateway(doer, store)

	if _, err := g.Login(context.Background(), "viewer@example.com", "secret"); err != nil {
		t.Fatalf("Login がエラーを返した: %v", err)
	}

	sess, ok := store.Get()
	if !ok {
		t.Fatal("ログイン成功後にセッションが不在")
	}
	if sess.User.Role != "viewer" {
		t.Errorf("Role = %s, want viewer", sess.User.Role)
	}

	// 呼び出し元が拒否してログアウトするとセッションは不在に戻る
	if err := g.Logout(); err != nil {
		t.Fatalf("Logout がエラーを返した: %v", err)
	}
	if _, ok := store.Get(); ok {
		t.Error("ログアウト後にセッションが存在する")
	}
}

func TestAuthGateway_Logout_NoNetworkCall(t *testing.T) {
	doer := &fakeDoer{err: errors.New("network must not be used")}
	store := newTestSession(t)
	if err := store.Set("abc", model.User{ID: "u1", Role: "admin"}); err != nil {
		t.Fatalf("Set がエラーを返した: %v", err)
	}

	g := NewAuthGateway(doer, store)
	if err := g.Logout(); err != nil {
		t.Fatalf("Logout がエラーを返した: %v", err)
	}

	if doer.calls != 0 {
		t.Errorf("Logout がネットワーク呼び出しを行った: %d回", doer.calls)
	}
	if _, ok := store.Get(); ok {
		t.Error("ログアウト後にセッションが存在する")
	}
}

func TestAuthGateway_Me(t *testing.T) {
	doer := &fakeDoer{data: `{"id":"u1","name":"Admin","role":"admin"}`}
	g := NewAuthGateway(doer, newTestSession(t))

	user, _, err := g.Me(context.Background())
	if err != nil {
		t.Fatalf("Me がエラーを返した: %v", err)
	}
	if doer.method != "GET" || doer.path != "/auth/me" {
		t.Errorf("リクエスト = %s %s, want GET /auth/me", doer.method, doer.path)
	}
	if user.ID != "u1" {
		t.Errorf("ID = %s, want u1", user.ID)
	}
}
