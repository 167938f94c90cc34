// Package captcha calls the external verification endpoint that confirms a
// client-supplied token came from a human-driven challenge.
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/solsocial/internal/common"
	"github.com/sethvargo/go-retry"
)

// Client verifies captcha responses against an HTTP endpoint with the usual
// `{secret, response} -> {success}` contract. Calls are bounded by the
// configured timeout and retried with backoff; exhausting the retries maps
// to common.ErrorDependency so the caller can surface a retryable failure.
type Client struct {
	endpoint   string
	secret     string
	httpClient *http.Client
}

type verifyResponse struct {
	Success bool `json:"success"`
}

func NewClient(endpoint, secret string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		secret:     secret,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether a captcha secret is configured. With no secret
// the check is skipped entirely.
func (c *Client) Enabled() bool {
	return c.secret != ""
}

// Verify checks the captcha response token. It returns nil when the
// endpoint confirms the token, common.ErrorUnauthorized when the endpoint
// rejects it, and common.ErrorDependency when the endpoint cannot be
// reached.
func (c *Client) Verify(ctx context.Context, response string) error {
	if !c.Enabled() {
		return nil
	}

	var result verifyResponse

	backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		res, err := c.post(ctx, response)
		if err != nil {
			return retry.RetryableError(err)
		}
		result = *res
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: captcha verification: %v", common.ErrorDependency, err)
	}

	if !result.Success {
		return common.ErrorUnauthorized
	}
	return nil
}

func (c *Client) post(ctx context.Context, response string) (*verifyResponse, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", response)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("captcha endpoint returned %s", resp.Status)
	}

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
