package model

import "encoding/json"

// Envelope はバックエンドの全レスポンスが従う統一フォーマットを表す。
// successがfalseの場合、dataの内容に依存してはならない。
// messageは失敗時に必ず存在することが保証される唯一のフィールド。
// ログインレスポンスのみ、追加でトップレベルにtokenとuserを持つ。
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`

	// ログインレスポンス専用フィールド
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// DecodeData はdataフィールドを指定の型にデコードする。
// dataが空の場合は何もしない。
func (e *Envelope) DecodeData(out any) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, out)
}
