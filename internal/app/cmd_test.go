package app

import (
	"reflect"
	"testing"
)

// TestParseCommand はサブコマンドの解析を検証する。
func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCmd  Command
		wantRest []string
	}{
		{"引数なし", nil, CommandHelp, nil},
		{"空スライス", []string{}, CommandHelp, nil},
		{"login", []string{"login", "admin@example.com", "secret"}, CommandLogin, []string{"admin@example.com", "secret"}},
		{"logout", []string{"logout"}, CommandLogout, []string{}},
		{"me", []string{"me"}, CommandMe, []string{}},
		{"dashboard", []string{"dashboard"}, CommandDashboard, []string{}},
		{"watch", []string{"watch"}, CommandWatch, []string{}},
		{"upload", []string{"upload", "goal.png", "media"}, CommandUpload, []string{"goal.png", "media"}},
		{"未知のコマンド", []string{"destroy"}, CommandHelp, nil},
		{"help", []string{"help"}, CommandHelp, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, rest := ParseCommand(tt.args)
			if cmd != tt.wantCmd {
				t.Errorf("ParseCommand(%v) cmd = %q, want %q", tt.args, cmd, tt.wantCmd)
			}
			if len(rest) != len(tt.wantRest) {
				t.Fatalf("ParseCommand(%v) rest = %v, want %v", tt.args, rest, tt.wantRest)
			}
			if len(rest) > 0 && !reflect.DeepEqual(rest, tt.wantRest) {
				t.Errorf("ParseCommand(%v) rest = %v, want %v", tt.args, rest, tt.wantRest)
			}
		})
	}
}
