// Package session は認証トークンとユーザーの永続ストアを提供する。
//
// ブラウザのlocalStorageに相当する、プロセス再起動を越えて生き残る
// クライアントローカルな保管庫。tokenとuserは常に1つの原子的な単位として
// 設定・取得・破棄され、どの読み取り側も片方だけが存在する状態を
// 観測することはない。
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hitoshi/footballctl/internal/model"
)

// Reader はセッション状態の読み取り専用ビュー。
// Access GuardとTransportはこのインターフェース経由でのみセッションを参照する。
type Reader interface {
	// Get は現在のセッションを返す。セッションが存在しない場合は
	// 2番目の戻り値がfalseになる。
	Get() (model.Session, bool)
}

// Store はセッションの唯一の所有者。
// 書き込みは認証ゲートウェイ（ログイン成功時のSet・ログアウト時のClear）と
// Transportの401分類パス（Clear）のみが行う。
type Store struct {
	mu   sync.Mutex
	path string
	cur  *model.Session // nil = 不在状態
}

// NewStore は指定パスを保存先とするStoreを生成する。
// 既存の認証情報ファイルがあれば読み込み、セッションを復元する。
// ファイルが存在しない場合は不在状態で開始する（エラーではない）。
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// 壊れたファイルは不在として扱い、次回のSetで上書きする
		return s, nil
	}
	if sess.Token == "" {
		return s, nil
	}

	s.cur = &sess
	return s, nil
}

// Set はトークンとユーザーを1つの単位として保存する。
// メモリ上の状態とファイルの両方を更新する。ファイルへの書き込みは
// 一時ファイル経由のリネームで行い、途中状態が観測されないようにする。
func (s *Store) Set(token string, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := model.Session{Token: token, User: user}
	if err := s.write(sess); err != nil {
		return err
	}
	s.cur = &sess
	return nil
}

// Get は現在のセッションを返す。不在の場合は2番目の戻り値がfalse。
func (s *Store) Get() (model.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return model.Session{}, false
	}
	return *s.cur, true
}

// Clear はトークンとユーザーを同時に破棄する。
// 既に不在の場合は何もしない（冪等）。
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}
	s.cur = nil
	return nil
}

// write は認証情報ファイルを原子的に書き込む。
// 認証情報を含むため、ディレクトリは0700、ファイルは0600とする。
func (s *Store) write(sess model.Session) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create credentials dir: %w", err)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace credentials file: %w", err)
	}
	return nil
}
