// Package client 带隙预测服务客户端
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/TencentBlueKing/gopkg/conv"
	"github.com/TencentBlueKing/gopkg/stringx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/narasux/perovskite/pkg/logging"
	"github.com/narasux/perovskite/pkg/model"
)

// BandGapPath 带隙预测接口路径
const BandGapPath = "/prediction/band_gap"

// RequestIDHeaderKey ...
const RequestIDHeaderKey = "X-Request-ID"

// Doer 发送 HTTP 请求，*http.Client 即满足
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client 预测服务客户端；不设超时、不重试、不去重，需要限时请通过 ctx 控制
type Client struct {
	baseURL    string
	doer       Doer
	authHeader string
	logger     *logrus.Logger
}

// Option ...
type Option func(*Client)

// WithDoer 替换底层 HTTP 实现（测试中注入假的 transport）
func WithDoer(doer Doer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

// WithBasicAuth 预测服务位于 BasicAuth 之后时使用，用户名为空则忽略
func WithBasicAuth(user, password string) Option {
	return func(c *Client) {
		if user == "" {
			return
		}
		c.authHeader = "Basic " + base64.StdEncoding.EncodeToString(conv.StringToBytes(user+":"+password))
	}
}

// New ...
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		doer:    &http.Client{},
		logger:  logging.GetPredictionLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit 提交预测请求，返回预测值
func (c *Client) Submit(ctx context.Context, req *model.PredictionRequest) (float64, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return 0, newPredictionError("encode request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+BandGapPath, bytes.NewReader(body))
	if err != nil {
		return 0, newPredictionError("new request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.authHeader != "" {
		httpReq.Header.Set("Authorization", c.authHeader)
	}
	requestID := RequestIDFromContext(ctx)
	if requestID != "" {
		httpReq.Header.Set(RequestIDHeaderKey, requestID)
	}

	start := time.Now()
	resp, err := c.doer.Do(httpReq)
	if err != nil {
		return 0, newPredictionError("send request", err)
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"url":       httpReq.URL.String(),
		"status":    resp.StatusCode,
		"latency":   time.Since(start).Milliseconds(),
		"requestID": requestID,
	}).Debug("prediction response received")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return 0, newPredictionError("check status", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, newPredictionError("read response", err)
	}
	value, err := decodeValue(data)
	if err != nil {
		return 0, newPredictionError("decode response", err)
	}
	return value, nil
}

// errUnexpectedBody 响应体既不是数字也不是 {"band_gap": 数字}
var errUnexpectedBody = errors.New("response body is not a number")

// 响应体为 JSON 数字，也兼容预测服务返回的 {"band_gap": 数字}
func decodeValue(data []byte) (float64, error) {
	var value *float64
	numErr := json.Unmarshal(data, &value)
	if numErr == nil {
		if value == nil {
			return 0, errUnexpectedBody
		}
		return *value, nil
	}

	var envelope struct {
		BandGap *float64 `json:"band_gap"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return 0, errors.Wrapf(errUnexpectedBody, "body %q: %s", stringx.Truncate(string(data), 64), numErr)
	}
	if envelope.BandGap == nil {
		return 0, errUnexpectedBody
	}
	return *envelope.BandGap, nil
}

type requestIDKey struct{}

// WithRequestID 将 Request ID 透传给预测服务
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext ...
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	return requestID
}
