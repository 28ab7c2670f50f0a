// Package hss はPyHSSプロビジョニングAPIのエンティティ別CRUDクライアントを提供する。
package hss

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/lynxis/pyhss-cli/internal/config"
)

// Client はPyHSSプロビジョニングAPIクライアントの実装。
// リトライもレスポンスキャッシュも行わず、1呼び出し=1同期リクエストとする。
type Client struct {
	httpClient *resty.Client
	cb         *gobreaker.CircuitBreaker
	baseURL    string
	apiKey     string
}

// NewClient は新しいPyHSS APIクライアントを生成する。
func NewClient(cfg *config.Config) *Client {
	httpClient := resty.New().
		SetTimeout(config.RequestTimeout)

	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	}

	return &Client{
		httpClient: httpClient,
		cb:         gobreaker.NewCircuitBreaker(cbSettings),
		baseURL:    cfg.BaseURL(),
		apiKey:     cfg.APIKey,
	}
}

// do は1回のAPIリクエストを実行する。
// トランスポートエラーと5xxのみCircuit Breakerの失敗として数える。
func (c *Client) do(ctx context.Context, method, path string, body any, query map[string]string) (*resty.Response, error) {
	start := time.Now()

	result, err := c.cb.Execute(func() (any, error) {
		req := c.httpClient.R().
			SetContext(ctx).
			SetHeader(HeaderContentType, ContentTypeJSON)

		// プロビジョニング資格情報は設定されている場合のみ付与する
		if c.apiKey != "" {
			req.SetHeader(HeaderProvisioningKey, c.apiKey)
		}
		if body != nil {
			req.SetBody(body)
		}
		if query != nil {
			req.SetQueryParams(query)
		}

		resp, err := req.Execute(method, c.baseURL+path)
		if err != nil {
			return nil, &ConnectionError{Cause: err}
		}

		if resp.StatusCode() >= 500 {
			return nil, &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
		}

		return resp, nil
	})

	latencyMs := time.Since(start).Milliseconds()

	if err != nil {
		// Circuit BreakerがOpen状態
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, ErrCircuitOpen
		}
		slog.Error("pyhss api request failed",
			"event_id", "HSS_API_ERR",
			"method", method,
			"path", path,
			"error", err.Error(),
			"latency_ms", latencyMs,
		)
		return nil, err
	}

	resp := result.(*resty.Response)
	slog.Debug("pyhss api request",
		"method", method,
		"path", path,
		"http_status", resp.StatusCode(),
		"latency_ms", latencyMs,
	)
	return resp, nil
}

// getByKey はキー付き参照を実行する。404は「存在しない」を意味し、エラーにしない。
func (c *Client) getByKey(ctx context.Context, path string, out any) (bool, error) {
	resp, err := c.do(ctx, resty.MethodGet, path, nil, nil)
	if err != nil {
		return false, err
	}

	if resp.StatusCode() == 404 {
		return false, nil
	}
	if resp.StatusCode() != 200 {
		return false, &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return false, fmt.Errorf("%w: json unmarshal: %v", ErrInvalidResponse, err)
	}
	return true, nil
}

// list は一覧取得を実行する。
func (c *Client) list(ctx context.Context, path string, query map[string]string, out any) error {
	resp, err := c.do(ctx, resty.MethodGet, path, nil, query)
	if err != nil {
		return err
	}

	if resp.StatusCode() != 200 {
		return &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: json unmarshal: %v", ErrInvalidResponse, err)
	}
	return nil
}

// put はコレクションルートへのcreate-or-update書き込みを実行する。
// レスポンスにはサーバー採番のIDを含むエンティティが入る。
func (c *Client) put(ctx context.Context, path string, entry, out any) error {
	resp, err := c.do(ctx, resty.MethodPut, path, entry, nil)
	if err != nil {
		return err
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: json unmarshal: %v", ErrInvalidResponse, err)
	}
	return nil
}

// deleteByID は削除を実行し、レスポンスボディの結果マーカーを検証する。
// HTTPが2xxでもボディがJSONオブジェクトでない、またはResultが"OK"でなければ失敗。
func (c *Client) deleteByID(ctx context.Context, entity, path string, id int) error {
	resp, err := c.do(ctx, resty.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	var result map[string]any
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return &DeleteResultError{Entity: entity, ID: id, Result: string(resp.Body())}
	}
	if marker, ok := result[DeleteResultField]; !ok || marker != DeleteResultOK {
		return &DeleteResultError{Entity: entity, ID: id, Result: result}
	}
	return nil
}

// GetSubscriberByIMSI はIMSIで加入者を参照する。未登録の場合は (nil, nil) を返す。
func (c *Client) GetSubscriberByIMSI(ctx context.Context, imsi string) (*Subscriber, error) {
	var sub Subscriber
	found, err := c.getByKey(ctx, "/subscriber/imsi/"+imsi, &sub)
	if err != nil || !found {
		return nil, err
	}
	return &sub, nil
}

// ListSubscribers は加入者一覧を取得する。
func (c *Client) ListSubscribers(ctx context.Context, page, pageSize int) ([]Subscriber, error) {
	var subs []Subscriber
	query := map[string]string{
		QueryPage:     strconv.Itoa(page),
		QueryPageSize: strconv.Itoa(pageSize),
	}
	if err := c.list(ctx, "/subscriber/list", query, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// PutSubscriber は加入者レコードを書き込む。
func (c *Client) PutSubscriber(ctx context.Context, entry *SubscriberEntry) (*Subscriber, error) {
	var sub Subscriber
	if err := c.put(ctx, "/subscriber/", entry, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// DeleteSubscriber は加入者レコードを削除する。
func (c *Client) DeleteSubscriber(ctx context.Context, id int) error {
	return c.deleteByID(ctx, "subscriber", "/subscriber/"+strconv.Itoa(id), id)
}

// GetAUCByIMSI はIMSIでAUCレコードを参照する。未登録の場合は (nil, nil) を返す。
func (c *Client) GetAUCByIMSI(ctx context.Context, imsi string) (*AUC, error) {
	var auc AUC
	found, err := c.getByKey(ctx, "/auc/imsi/"+imsi, &auc)
	if err != nil || !found {
		return nil, err
	}
	return &auc, nil
}

// PutAUC はAUCレコードを書き込む。
func (c *Client) PutAUC(ctx context.Context, entry *AUCEntry) (*AUC, error) {
	var auc AUC
	if err := c.put(ctx, "/auc/", entry, &auc); err != nil {
		return nil, err
	}
	return &auc, nil
}

// DeleteAUC はAUCレコードを削除する。
func (c *Client) DeleteAUC(ctx context.Context, id int) error {
	return c.deleteByID(ctx, "auc", "/auc/"+strconv.Itoa(id), id)
}

// ListAPNs はAPNプロファイル一覧を取得する。
// PyHSSにはAPN名でのキー付き参照が存在しないため、名前解決は常に全件取得になる。
func (c *Client) ListAPNs(ctx context.Context) ([]APN, error) {
	var apns []APN
	if err := c.list(ctx, "/apn/list", nil, &apns); err != nil {
		return nil, err
	}
	return apns, nil
}

// PutAPN はAPNプロファイルを書き込む。
func (c *Client) PutAPN(ctx context.Context, entry *APNEntry) (*APN, error) {
	var apn APN
	if err := c.put(ctx, "/apn/", entry, &apn); err != nil {
		return nil, err
	}
	return &apn, nil
}

// DeleteAPN はAPNプロファイルを削除する。
func (c *Client) DeleteAPN(ctx context.Context, id int) error {
	return c.deleteByID(ctx, "apn", "/apn/"+strconv.Itoa(id), id)
}

// GetIMSSubscriberByIMSI はIMSIでIMS加入者を参照する。未登録の場合は (nil, nil) を返す。
func (c *Client) GetIMSSubscriberByIMSI(ctx context.Context, imsi string) (*IMSSubscriber, error) {
	var sub IMSSubscriber
	found, err := c.getByKey(ctx, "/ims_subscriber/ims_subscriber_imsi/"+imsi, &sub)
	if err != nil || !found {
		return nil, err
	}
	return &sub, nil
}

// GetIMSSubscriberByMSISDN はMSISDNでIMS加入者を参照する。未登録の場合は (nil, nil) を返す。
func (c *Client) GetIMSSubscriberByMSISDN(ctx context.Context, msisdn string) (*IMSSubscriber, error) {
	var sub IMSSubscriber
	found, err := c.getByKey(ctx, "/ims_subscriber/ims_subscriber_msisdn/"+msisdn, &sub)
	if err != nil || !found {
		return nil, err
	}
	return &sub, nil
}

// ListIMSSubscribers はIMS加入者一覧を取得する。
func (c *Client) ListIMSSubscribers(ctx context.Context, page, pageSize int) ([]IMSSubscriber, error) {
	var subs []IMSSubscriber
	query := map[string]string{
		QueryPage:     strconv.Itoa(page),
		QueryPageSize: strconv.Itoa(pageSize),
	}
	if err := c.list(ctx, "/ims_subscriber/list", query, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// PutIMSSubscriber はIMS加入者レコードを書き込む。
func (c *Client) PutIMSSubscriber(ctx context.Context, entry *IMSSubscriberEntry) (*IMSSubscriber, error) {
	var sub IMSSubscriber
	if err := c.put(ctx, "/ims_subscriber/", entry, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// DeleteIMSSubscriber はIMS加入者レコードを削除する。
func (c *Client) DeleteIMSSubscriber(ctx context.Context, id int) error {
	return c.deleteByID(ctx, "ims_subscriber", "/ims_subscriber/"+strconv.Itoa(id), id)
}
