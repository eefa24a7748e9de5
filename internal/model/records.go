// Package model はドメインモデルを定義する。
// 各リソースのIDはサーバー発行の不透明な文字列であり、クライアント側で
// 生成・解釈してはならない。タイムスタンプ類もサーバー管理とする。
package model

// RoleAdmin は管理画面へのアクセスを許可するロール。
const RoleAdmin = "admin"

// User は認証済みユーザーを表す。
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin は管理者ロールかどうかを返す。
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session はクライアントが保持する認証トークンとユーザーの組を表す。
// tokenとuserは常に一体で設定・破棄される（片方だけの状態は存在しない）。
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// 投票タイプ。GET /polls/{type} のパスセグメントとして使用する。
const (
	PollTypeDaily           = "daily-poll"
	PollTypeClubBattle      = "club-battle"
	PollTypeGoatCompetition = "goat-competition"
)

// PollOption は投票の選択肢を表す。
type PollOption struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Votes int    `json:"votes,omitempty"`
}

// Poll は2択投票を表す。
type Poll struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Question   string     `json:"question"`
	Option1    PollOption `json:"option1"`
	Option2    PollOption `json:"option2"`
	TotalVotes int        `json:"totalVotes,omitempty"`
	IsActive   bool       `json:"isActive,omitempty"`
}

// Match は試合を表す。leagueTypeでリーグ区分
// （international, local, inter-quarter）を識別する。
type Match struct {
	ID         string `json:"id"`
	HomeTeam   string `json:"homeTeam"`
	AwayTeam   string `json:"awayTeam"`
	HomeLogo   string `json:"homeLogo,omitempty"`
	AwayLogo   string `json:"awayLogo,omitempty"`
	League     string `json:"league,omitempty"`
	LeagueType string `json:"leagueType,omitempty"`
	MatchDate  string `json:"matchDate,omitempty"`
	MatchTime  string `json:"matchTime,omitempty"`
	HomeScore  *int   `json:"homeScore,omitempty"`
	AwayScore  *int   `json:"awayScore,omitempty"`
	Status     string `json:"status,omitempty"`
	TotalVotes int    `json:"totalVotes,omitempty"`
}

// ScoreUpdate は試合スコア更新のリクエストボディを表す。
// PUT /matches/{id}/score に送信する。
type ScoreUpdate struct {
	HomeScore int `json:"homeScore"`
	AwayScore int `json:"awayScore"`
}

// Highlight はハイライト動画を表す。
type Highlight struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	YoutubeURL  string `json:"youtubeUrl"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Views       int    `json:"views,omitempty"`
}

// NewsItem はニュース記事を表す。Descriptionには限定的なHTMLを許容する
// （送信前にsecurity.ContentSanitizerServiceでサニタイズされる）。
type NewsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	YoutubeURL  string `json:"youtubeUrl,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	IsTrending  bool   `json:"isTrending,omitempty"`
}

// LiveMatch はライブ配信中の試合を表す。
type LiveMatch struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	HomeTeam    string `json:"homeTeam,omitempty"`
	AwayTeam    string `json:"awayTeam,omitempty"`
	HomeLogo    string `json:"homeLogo,omitempty"`
	AwayLogo    string `json:"awayLogo,omitempty"`
	YoutubeURL  string `json:"youtubeUrl"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	MatchDate   string `json:"matchDate,omitempty"`
	MatchTime   string `json:"matchTime,omitempty"`
	Status      string `json:"status,omitempty"`
}

// FanGroup はファングループを表す。
type FanGroup struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Slogan string `json:"slogan,omitempty"`
	Logo   string `json:"logo,omitempty"`
	Color  string `json:"color,omitempty"`
}

// FanPost はファングループへの投稿を表す。Contentには限定的なHTMLを許容する
// （送信前にサニタイズされる）。
type FanPost struct {
	ID      string `json:"id,omitempty"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// Product はショップ商品を表す。
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Category      string   `json:"category,omitempty"`
	Brand         string   `json:"brand,omitempty"`
	Stock         int      `json:"stock,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Images        []string `json:"images,omitempty"`
	IsAvailable   bool     `json:"isAvailable,omitempty"`
	IsFeatured    bool     `json:"isFeatured,omitempty"`
}

// PredictionForum は予想フォーラムを表す。削除はソフトデリートで、
// サーバー側でIsActiveがfalseになる。
type PredictionForum struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	HeadUserID     string `json:"headUserId"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	IsActive       bool   `json:"isActive,omitempty"`
}

// OverallStats は統計集計の全体サマリを表す。
type OverallStats struct {
	TotalVotes      int `json:"totalVotes"`
	TotalPollVotes  int `json:"totalPollVotes,omitempty"`
	TotalMatchVotes int `json:"totalMatchVotes,omitempty"`
	ActivePolls     int `json:"activePolls,omitempty"`
}

// Statistics はGET /statisticsが返す集計を表す。
type Statistics struct {
	Overall OverallStats `json:"overall"`
}

// UploadResult はPOST /uploadが返すアップロード結果を表す。
// URLは後続のリソース登録ペイロードに埋め込む不透明な値であり、
// アップロード後にローカルのファイル状態は保持しない。
type UploadResult struct {
	URL string `json:"url"`
}

// DashboardStats はダッシュボードに表示するリソースファミリーごとの集計。
// 一部のフェッチが失敗した場合、該当ファミリーは0件として扱われる。
type DashboardStats struct {
	TotalPolls            int `json:"totalPolls"`
	TotalMatches          int `json:"totalMatches"`
	TotalHighlights       int `json:"totalHighlights"`
	TotalNews             int `json:"totalNews"`
	TotalLiveMatches      int `json:"totalLiveMatches"`
	TotalFanGroups        int `json:"totalFanGroups"`
	TotalProducts         int `json:"totalProducts"`
	TotalPredictionForums int `json:"totalPredictionForums"`
	TotalVotes            int `json:"totalVotes"`
}
