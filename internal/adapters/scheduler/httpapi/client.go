package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/xthreads-cli/internal/ports"
	"github.com/google/uuid"
)

const (
	threadsPath    = "/v1/threads"
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 4 << 10
)

// Client submits scheduled threads to an external scheduling server. Each
// call carries a fresh Idempotency-Key so a retried request is not queued twice.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	newKey     func() string
}

var _ ports.Scheduler = (*Client)(nil)

func NewClient(baseURL string, token string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("scheduler url is empty")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: httpClient,
		newKey:     uuid.NewString,
	}, nil
}

type scheduleBody struct {
	AccountID string   `json:"account_id"`
	Segments  []string `json:"segments"`
	PostAt    string   `json:"post_at"`
}

type scheduleResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

func (c *Client) Schedule(ctx context.Context, req ports.ScheduleRequest) (string, error) {
	payload, err := json.Marshal(scheduleBody{
		AccountID: string(req.AccountID),
		Segments:  req.Segments,
		PostAt:    req.PostAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("encode schedule request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+threadsPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build schedule request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Idempotency-Key", c.newKey())
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send schedule request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return "", fmt.Errorf("read schedule response: %w", err)
	}

	var decoded scheduleResponse
	_ = json.Unmarshal(body, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(decoded.Error)
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		if msg == "" {
			return "", fmt.Errorf("scheduler returned %s", resp.Status)
		}
		return "", fmt.Errorf("scheduler returned %s: %s", resp.Status, msg)
	}
	if decoded.ID == "" {
		return "", errors.New("scheduler response has no id")
	}

	return decoded.ID, nil
}
