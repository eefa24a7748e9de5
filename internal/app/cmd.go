package app

// Command はCLIのサブコマンドを表す。
type Command string

const (
	// CommandLogin は管理者としてログインし、セッションを保存する。
	CommandLogin Command = "login"
	// CommandLogout はローカルのセッションを破棄する。
	CommandLogout Command = "logout"
	// CommandMe は現在の認証ユーザーを表示する。
	CommandMe Command = "me"
	// CommandDashboard は全リソースの集計を1回取得して表示する。
	CommandDashboard Command = "dashboard"
	// CommandWatch は集計を定期更新しつつ観測用HTTPサーバーを起動する。
	CommandWatch Command = "watch"
	// CommandUpload は画像をアップロードしてURLを表示する。
	CommandUpload Command = "upload"
	// CommandHelp は使い方を表示する。
	CommandHelp Command = "help"
)

// ParseCommand はコマンドライン引数からサブコマンドと残りの引数を解析する。
// 引数が空またはサポート外のコマンドの場合はCommandHelpを返す。
func ParseCommand(args []string) (Command, []string) {
	if len(args) == 0 {
		return CommandHelp, nil
	}

	switch args[0] {
	case "login":
		return CommandLogin, args[1:]
	case "logout":
		return CommandLogout, args[1:]
	case "me":
		return CommandMe, args[1:]
	case "dashboard":
		return CommandDashboard, args[1:]
	case "watch":
		return CommandWatch, args[1:]
	case "upload":
		return CommandUpload, args[1:]
	default:
		return CommandHelp, nil
	}
}

// usage はヘルプテキスト。
const usage = `footballctl - football content platform admin client

Usage:
  footballctl login <email> <password>   管理者としてログインする
  footballctl logout                     ローカルのセッションを破棄する
  footballctl me                         現在の認証ユーザーを表示する
  footballctl dashboard                  全リソースの集計を表示する
  footballctl watch                      集計を定期更新し観測サーバーを起動する
  footballctl upload <file> [folder]     画像をアップロードしてURLを表示する

Environment:
  API_BASE_URL      バックエンドAPIのベースURL（必須）
  CREDENTIALS_PATH  認証情報ファイルのパス
  WATCH_INTERVAL    watchモードの更新間隔（デフォルト 1m）
  SERVER_PORT       watchモードの観測サーバーのポート（デフォルト 8080）
`
