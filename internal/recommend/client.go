// Package recommend forwards chat messages to the fitness recommendation backend.
package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"wellnexAPI/internal/metrics"
)

var ErrUpstream = errors.New("chat service failed")

type chatRequest struct {
	UserInput string `json:"user_input"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type Client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(url string, timeout time.Duration, rps float64) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

func (c *Client) Ask(ctx context.Context, message string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: throttled: %v", ErrUpstream, err)
	}

	start := time.Now()
	reply, err := c.ask(ctx, message)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.RemoteCalls.WithLabelValues("chat", outcome).Observe(time.Since(start).Seconds())
	return reply, err
}

func (c *Client) ask(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(chatRequest{UserInput: message})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	return out.Response, nil
}
