// Package transport はバックエンドAPIへのHTTP送信層を提供する。
// ベースURLとパスからのURL構築、ベアラートークンの付与、Envelopeの
// デコード、障害の分類を一手に引き受ける。401の検出とそれに伴う
// セッション破棄はこの層だけが行い、呼び出し側で重複させない。
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/hitoshi/footballctl/internal/metrics"
	"github.com/hitoshi/footballctl/internal/model"
)

// SessionStore はTransportが必要とするセッション操作。
// 読み取りはトークン付与のため、Clearは401分類パスのためにのみ使用する。
type SessionStore interface {
	Get() (model.Session, bool)
	Clear() error
}

// Doer はリクエスト送信のインターフェース。
// ゲートウェイはこの抽象経由でTransportを利用し、テストではフェイクに差し替える。
type Doer interface {
	// Do はJSONリクエストを送信し、デコード済みEnvelopeを返す。
	// outが非nilかつレスポンスが成功の場合、Envelopeのdataをoutにデコードする。
	Do(ctx context.Context, method, path string, body any, query url.Values, out any) (*model.Envelope, error)

	// Upload はmultipart/form-data（imageフィールド + folderフィールド）で
	// ファイルを送信する。
	Upload(ctx context.Context, path, filename string, file io.Reader, folder string, out any) (*model.Envelope, error)
}

// Config はClientの生成パラメータ。
type Config struct {
	BaseURL       string
	HTTPClient    *http.Client  // nilの場合はhttp.DefaultClient
	Store         SessionStore  // 必須
	Limiter       *rate.Limiter // nilの場合はレート制限なし
	Metrics       metrics.Recorder
	Logger        *slog.Logger
	OnAuthExpired func() // 401分類後（セッション破棄後）に1回呼ばれる
}

// Client はDoerの実装。
// タイムアウトはこの層では強制しない（単発のCRUD呼び出しが対象であり、
// 打ち切りの判断はコンテキスト経由で呼び出し元に委ねる）。
// 再試行も行わない。フォームの再送信は利用者の操作に委ねる。
type Client struct {
	baseURL       *url.URL
	httpClient    *http.Client
	store         SessionStore
	limiter       *rate.Limiter
	metrics       metrics.Recorder
	logger        *slog.Logger
	onAuthExpired func()
}

// NewClient はClientを生成する。BaseURLが不正な場合はエラーを返す。
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute: %s", cfg.BaseURL)
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("session store is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	rec := cfg.Metrics
	if rec == nil {
		rec = metrics.Nop{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:       base,
		httpClient:    httpClient,
		store:         cfg.Store,
		limiter:       cfg.Limiter,
		metrics:       rec,
		logger:        logger,
		onAuthExpired: cfg.OnAuthExpired,
	}, nil
}

// Do はJSONリクエストを送信し、デコード済みEnvelopeを返す。
// 2xxでsuccess:falseのEnvelopeはエラーではなくそのまま返す
// （successの検査は呼び出し元の責務）。
func (c *Client) Do(ctx context.Context, method, path string, body any, query url.Values, out any) (*model.Envelope, error) {
	var payload io.Reader
	contentType := ""

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
		contentType = "application/json"
	}

	return c.roundTrip(ctx, method, path, query, contentType, payload, out)
}

// Upload はmultipart/form-dataでファイルを送信する。
// フォームはimageフィールド（ファイル本体）とfolderフィールド（保存先）で構成される。
func (c *Client) Upload(ctx context.Context, path, filename string, file io.Reader, folder string, out any) (*model.Envelope, error) {
	payload, contentType, err := buildMultipart(filename, file, folder)
	if err != nil {
		return nil, err
	}
	return c.roundTrip(ctx, http.MethodPost, path, nil, contentType, payload, out)
}

// roundTrip はリクエストの構築・送信・分類を行う共通パス。
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, contentType string, payload io.Reader, out any) (*model.Envelope, error) {
	reqID := uuid.New().String()
	reqURL := c.buildURL(path, query)

	// クライアント側レート制限。管理画面の一括操作でバックエンドを
	// 叩きすぎないための送信側の自衛。
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, model.NewRequestFailedError(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// セッションにトークンがあれば付与する。なければ匿名リクエスト。
	if sess, ok := c.store.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	c.logger.Debug("sending API request",
		slog.String("request_id", reqID),
		slog.String("method", method),
		slog.String("path", path),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("API request failed",
			slog.String("request_id", reqID),
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		c.metrics.RecordRequestFailure(method, string(model.KindTransport))
		return nil, model.NewRequestFailedError(err)
	}
	defer resp.Body.Close()

	c.metrics.RecordHTTPStatus(resp.StatusCode)
	c.metrics.RecordRequestLatency(time.Since(start))

	// 401は認証喪失の唯一の検出点。セッションを破棄してフックを呼び、
	// レスポンスボディは捨てて呼び出し元にはエラーのみを伝える。
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, c.handleAuthExpired(reqID, method, path)
	}

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordRequestFailure(method, string(model.KindTransport))
		return nil, model.NewRequestFailedError(err)
	}

	var env model.Envelope
	if err := json.Unmarshal(rawBody, &env); err != nil {
		c.logger.Error("failed to decode API response",
			slog.String("request_id", reqID),
			slog.Int("http_status", resp.StatusCode),
			slog.String("error", err.Error()),
		)
		c.metrics.RecordRequestFailure(method, string(model.KindTransport))
		return nil, model.NewMalformedResponseError(resp.StatusCode)
	}

	// 非2xx: Envelopeのmessageをそのまま載せて返す。セッションには影響しない。
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("API request rejected",
			slog.String("request_id", reqID),
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("http_status", resp.StatusCode),
		)
		c.metrics.RecordRequestFailure(method, string(model.KindValidation))
		return &env, model.NewServerRejectedError(resp.StatusCode, env.Message)
	}

	if out != nil && env.Success {
		if err := env.DecodeData(out); err != nil {
			c.metrics.RecordRequestFailure(method, string(model.KindTransport))
			return nil, model.NewMalformedResponseError(resp.StatusCode)
		}
	}

	c.metrics.RecordRequestSuccess(method)
	return &env, nil
}

// handleAuthExpired は401分類時の一連の副作用を実行する。
func (c *Client) handleAuthExpired(reqID, method, path string) error {
	c.logger.Warn("authentication expired, clearing session",
		slog.String("request_id", reqID),
		slog.String("method", method),
		slog.String("path", path),
	)

	if err := c.store.Clear(); err != nil {
		c.logger.Error("failed to clear session after 401",
			slog.String("error", err.Error()),
		)
	}
	c.metrics.RecordAuthExpired()
	c.metrics.RecordRequestFailure(method, string(model.KindAuth))

	if c.onAuthExpired != nil {
		c.onAuthExpired()
	}
	return model.NewAuthExpiredError()
}

// buildURL はベースURLとパス、クエリから完全なリクエストURLを構築する。
// ベースURLのパス（/api等）は保持し、その後ろにpathを連結する。
func (c *Client) buildURL(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}
