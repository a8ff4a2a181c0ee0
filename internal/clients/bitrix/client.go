package bitrix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/pkg/config"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/pkg/transport"
)

// rateLimitMarker is the error code Bitrix24 puts in a 503 body when the webhook is throttled.
const rateLimitMarker = "QUERY_LIMIT_EXCEEDED"

type Client struct {
	webhookURL string
	http       *retryablehttp.Client
}

func NewClient(cfg config.Bitrix) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = max(cfg.RetryAttempts-1, 0)
	retryClient.RetryWaitMin = cfg.RetryDelay
	retryClient.RetryWaitMax = cfg.RetryDelay
	retryClient.Backoff = fixedBackoff
	retryClient.CheckRetry = retryOnRateLimit
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(http.DefaultTransport)
	retryClient.Logger = slog.Default().With("client", "bitrix")

	return &Client{
		webhookURL: strings.TrimSuffix(cfg.WebhookURL, "/") + "/",
		http:       retryClient,
	}
}

// fixedBackoff waits the same delay before every retry.
func fixedBackoff(minWait, _ time.Duration, _ int, _ *http.Response) time.Duration {
	return minWait
}

// retryOnRateLimit retries only throttled calls; any other failure is final.
func retryOnRateLimit(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil || resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		return false, nil
	}

	body, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))

	if readErr != nil {
		return false, nil
	}

	return bytes.Contains(body, []byte(rateLimitMarker)), nil
}

type envelope struct {
	Result           json.RawMessage `json:"result"`
	Next             *int            `json:"next,omitempty"`
	Total            int             `json:"total,omitempty"`
	Error            string          `json:"error,omitempty"`
	ErrorDescription string          `json:"error_description,omitempty"`
}

// Call invokes a REST method and returns its "result" member.
// Every failure wraps entity.ErrNoResult: the remote state is unknown, not absent.
func (c *Client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	env, err := c.call(ctx, method, params)
	if err != nil {
		return nil, err
	}

	return env.Result, nil
}

func (c *Client) call(ctx context.Context, method string, params any) (envelope, error) {
	b, err := json.Marshal(params)
	if err != nil {
		return envelope{}, fmt.Errorf("marshal %s params: %w", method, err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL+method+".json", b)
	if err != nil {
		return envelope{}, fmt.Errorf("create %s request: %w", method, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("%w: %s: %w", entity.ErrNoResult, method, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, fmt.Errorf("%w: %s: read response: %w", entity.ErrNoResult, method, err)
	}

	var env envelope

	if resp.StatusCode != http.StatusOK {
		_ = json.Unmarshal(body, &env)

		return envelope{}, fmt.Errorf("%w: %s: unexpected status code %d: %s %s",
			entity.ErrNoResult, method, resp.StatusCode, env.Error, env.ErrorDescription)
	}

	err = json.Unmarshal(body, &env)
	if err != nil {
		return envelope{}, fmt.Errorf("%w: %s: decode response: %w", entity.ErrNoResult, method, err)
	}

	if env.Error != "" {
		return envelope{}, fmt.Errorf("%w: %s: %s %s", entity.ErrNoResult, method, env.Error, env.ErrorDescription)
	}

	if len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")) {
		return envelope{}, fmt.Errorf("%w: %s: empty result", entity.ErrNoResult, method)
	}

	return env, nil
}
