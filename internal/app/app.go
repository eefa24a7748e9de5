// Package app はCLIのエントリーポイントと依存関係のワイヤリングを提供する。
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/hitoshi/footballctl/internal/config"
	"github.com/hitoshi/footballctl/internal/dashboard"
	"github.com/hitoshi/footballctl/internal/gateway"
	"github.com/hitoshi/footballctl/internal/guard"
	"github.com/hitoshi/footballctl/internal/logger"
	"github.com/hitoshi/footballctl/internal/metrics"
	"github.com/hitoshi/footballctl/internal/model"
	"github.com/hitoshi/footballctl/internal/security"
	"github.com/hitoshi/footballctl/internal/session"
	"github.com/hitoshi/footballctl/internal/transport"
)

// Init はアプリケーションの初期化を行う。
// ログをセットアップしてから環境変数でConfigを読み込む。
// ログは標準エラーに出力し、コマンドの出力（標準出力）とは分離する。
func Init() (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(os.Stderr, false)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Verbose {
		logger.SetupDefault(os.Stderr, true)
	}

	return cfg, nil
}

// Run はCLIのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応する処理を実行する。
// argsにはos.Args[1:]を、wにはコマンド出力先（通常os.Stdout）を渡す。
func Run(w io.Writer, args []string) error {
	cmd, rest := ParseCommand(args)

	// help は設定不要のため、初期化をスキップする
	if cmd == CommandHelp {
		fmt.Fprint(w, usage)
		return nil
	}

	cfg, err := Init()
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting footballctl",
		slog.String("command", string(cmd)),
		slog.String("base_url", cfg.APIBaseURL),
	)

	env, err := buildEnv(cfg, w)
	if err != nil {
		return err
	}

	ctx := context.Background()

	switch cmd {
	case CommandLogin:
		return runLogin(ctx, w, env, rest)
	case CommandLogout:
		return runLogout(w, env)
	case CommandMe:
		return runMe(ctx, w, env)
	case CommandDashboard:
		return runDashboard(ctx, w, env)
	case CommandWatch:
		return runWatch(w, env)
	case CommandUpload:
		return runUpload(ctx, w, env, rest)
	default:
		fmt.Fprint(w, usage)
		return nil
	}
}

// runtimeEnv は1回の実行で使う依存関係の束。
type runtimeEnv struct {
	cfg       *config.Config
	store     *session.Store
	gateways  *gateway.Set
	guard     *guard.Guard
	registry  *prometheus.Registry
	collector *metrics.Collector
}

// buildEnv は設定から全依存関係をワイヤリングする。
// セッションストア → Transport → ゲートウェイ → ガードの順に構築する。
func buildEnv(cfg *config.Config, w io.Writer) (*runtimeEnv, error) {
	// 1. セッションストア（既存の認証情報があれば復元する）
	store, err := session.NewStore(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	// 2. セキュリティサービスとメトリクス
	urlGuard := security.NewURLGuard()
	sanitizer := security.NewContentSanitizer()
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// 3. Transport。タイムアウトは設定しない（呼び出し元がコンテキストで制御する）
	client, err := transport.NewClient(transport.Config{
		BaseURL:    cfg.APIBaseURL,
		HTTPClient: urlGuard.NewSafeClient(0),
		Store:      store,
		Limiter:    rate.NewLimiter(rate.Limit(cfg.RequestRate), cfg.RequestBurst),
		Metrics:    collector,
		Logger:     slog.Default(),
		OnAuthExpired: func() {
			// ブラウザのログイン画面リダイレクトに相当する通知
			fmt.Fprintf(w, "セッションが失効しました。%s から再度ログインしてください。\n", cfg.LoginPath)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build transport: %w", err)
	}

	// 4. ゲートウェイとガード
	gateways := gateway.NewSet(gateway.Deps{
		Doer:      client,
		Session:   store,
		Sanitizer: sanitizer,
		URLGuard:  urlGuard,
	})

	return &runtimeEnv{
		cfg:       cfg,
		store:     store,
		gateways:  gateways,
		guard:     guard.New(store, cfg.LoginPath),
		registry:  registry,
		collector: collector,
	}, nil
}

// requireAdmin は保護されたコマンドの入場判定を行う。
// コマンド実行のたびに評価し直す（結果はキャッシュしない）。
func requireAdmin(w io.Writer, env *runtimeEnv) error {
	decision := env.guard.Evaluate()
	if !decision.Allow {
		fmt.Fprintf(w, "管理者としてのログインが必要です: footballctl login（%s）\n", decision.RedirectTo)
		return fmt.Errorf("access denied")
	}
	return nil
}

// runLogin はログインフローを実行する。
// 管理者以外のユーザーで認証に成功した場合はセッションを即座に破棄し、
// アクセス拒否として扱う。
func runLogin(ctx context.Context, w io.Writer, env *runtimeEnv, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: footballctl login <email> <password>")
	}
	email, password := args[0], args[1]

	resp, err := env.gateways.Auth.Login(ctx, email, password)
	if err != nil {
		if apiErr, ok := err.(*model.APIError); ok {
			fmt.Fprintln(w, apiErr.Message)
		}
		return fmt.Errorf("login failed: %w", err)
	}
	if !resp.Success {
		// 認証失敗はセッション未作成のためローカルのフォームエラー扱い
		msg := resp.Message
		if msg == "" {
			msg = "ログインに失敗しました。"
		}
		fmt.Fprintln(w, msg)
		return fmt.Errorf("login rejected")
	}

	if resp.User == nil || !resp.User.IsAdmin() {
		if err := env.gateways.Auth.Logout(); err != nil {
			return fmt.Errorf("failed to discard non-admin session: %w", err)
		}
		fmt.Fprintln(w, "アクセスが拒否されました。管理者権限が必要です。")
		return fmt.Errorf("admin role required")
	}

	fmt.Fprintf(w, "%s としてログインしました。\n", resp.User.Email)
	return nil
}

// runLogout はローカルのセッションを破棄する。
// 既にログアウト済みでもエラーにはしない（冪等）。
func runLogout(w io.Writer, env *runtimeEnv) error {
	if err := env.gateways.Auth.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	fmt.Fprintln(w, "ログアウトしました。")
	return nil
}

// runMe は現在の認証ユーザーを表示する。
func runMe(ctx context.Context, w io.Writer, env *runtimeEnv) error {
	if err := requireAdmin(w, env); err != nil {
		return err
	}

	user, resp, err := env.gateways.Auth.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch current user: %w", err)
	}
	if !resp.Success {
		fmt.Fprintln(w, resp.Message)
		return fmt.Errorf("me rejected")
	}

	fmt.Fprintf(w, "ID:    %s\n", user.ID)
	fmt.Fprintf(w, "Name:  %s\n", user.Name)
	fmt.Fprintf(w, "Email: %s\n", user.Email)
	fmt.Fprintf(w, "Role:  %s\n", user.Role)
	return nil
}

// newFetcher はゲートウェイ束からダッシュボード集計のFetcherを構築する。
func newFetcher(env *runtimeEnv, rec metrics.Recorder) *dashboard.Fetcher {
	gw := env.gateways
	return dashboard.NewFetcher(dashboard.Sources{
		Polls: func(ctx context.Context) (int, error) {
			polls, _, err := gw.Polls.List(ctx)
			return len(polls), err
		},
		Matches: func(ctx context.Context) (int, error) {
			matches, _, err := gw.Matches.List(ctx, gateway.MatchFilter{})
			return len(matches), err
		},
		Highlights: func(ctx context.Context) (int, error) {
			highlights, _, err := gw.Highlights.List(ctx)
			return len(highlights), err
		},
		News: func(ctx context.Context) (int, error) {
			items, _, err := gw.News.List(ctx)
			return len(items), err
		},
		LiveMatches: func(ctx context.Context) (int, error) {
			matches, _, err := gw.LiveMatches.List(ctx)
			return len(matches), err
		},
		FanGroups: func(ctx context.Context) (int, error) {
			groups, _, err := gw.FanGroups.List(ctx)
			return len(groups), err
		},
		Products: func(ctx context.Context) (int, error) {
			products, _, err := gw.Products.List(ctx, gateway.ProductFilter{})
			return len(products), err
		},
		PredictionForums: func(ctx context.Context) (int, error) {
			forums, _, err := gw.PredictionForums.List(ctx)
			return len(forums), err
		},
		Votes: func(ctx context.Context) (int, error) {
			stats, _, err := gw.Statistics.Get(ctx)
			return stats.Overall.TotalVotes, err
		},
	}, slog.Default(), rec)
}

// runDashboard は全リソースの集計を1回取得して表示する。
func runDashboard(ctx context.Context, w io.Writer, env *runtimeEnv) error {
	if err := requireAdmin(w, env); err != nil {
		return err
	}

	stats := newFetcher(env, metrics.Nop{}).FetchStats(ctx)

	fmt.Fprintf(w, "Polls:             %d\n", stats.TotalPolls)
	fmt.Fprintf(w, "Matches:           %d\n", stats.TotalMatches)
	fmt.Fprintf(w, "Highlights:        %d\n", stats.TotalHighlights)
	fmt.Fprintf(w, "News:              %d\n", stats.TotalNews)
	fmt.Fprintf(w, "Live matches:      %d\n", stats.TotalLiveMatches)
	fmt.Fprintf(w, "Fan groups:        %d\n", stats.TotalFanGroups)
	fmt.Fprintf(w, "Products:          %d\n", stats.TotalProducts)
	fmt.Fprintf(w, "Prediction forums: %d\n", stats.TotalPredictionForums)
	fmt.Fprintf(w, "Total votes:       %d\n", stats.TotalVotes)
	return nil
}

// runUpload は画像をアップロードして保存先URLを表示する。
func runUpload(ctx context.Context, w io.Writer, env *runtimeEnv, args []string) error {
	if err := requireAdmin(w, env); err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: footballctl upload <file> [folder]")
	}

	folder := env.cfg.UploadFolder
	if len(args) >= 2 {
		folder = args[1]
	}

	info, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("failed to stat upload file: %w", err)
	}
	if info.Size() > env.cfg.UploadMaxSize {
		return fmt.Errorf("upload file too large: %d > %d bytes", info.Size(), env.cfg.UploadMaxSize)
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open upload file: %w", err)
	}
	defer file.Close()

	result, resp, err := env.gateways.Upload.Image(ctx, info.Name(), file, folder)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	if !resp.Success {
		fmt.Fprintln(w, resp.Message)
		return fmt.Errorf("upload rejected")
	}

	fmt.Fprintln(w, result.URL)
	return nil
}
