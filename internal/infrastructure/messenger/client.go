// Package messenger is the HTTP client for the group messaging provider.
package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/teamboard/teamboard/internal/domain/setting"
	sharedConfig "github.com/teamboard/teamboard/internal/shared/config"
	apperrors "github.com/teamboard/teamboard/internal/shared/errors"
	"github.com/teamboard/teamboard/internal/shared/logger"
)

const (
	endpointCheckKey  = "/checking_key"
	endpointSendGroup = "/send_message_group"

	maxErrorBodyBytes = 1 << 10
)

// CredentialSource resolves the provider credentials for each call.
type CredentialSource interface {
	GetMessengerCredential(ctx context.Context) (setting.MessengerCredential, error)
}

// SendResponse is the provider's reply to a group send. Status is kept raw
// because the provider mixes booleans, numbers and strings.
type SendResponse struct {
	Status  json.RawMessage `json:"status"`
	Message string          `json:"message"`
}

// Status is the result of a credential check.
type Status struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message"`
}

type Client struct {
	credentials CredentialSource
	httpClient  *http.Client
	baseURL     string
	logger      logger.Interface
}

func NewClient(cfg sharedConfig.MessengerConfig, credentials CredentialSource, logger logger.Interface) *Client {
	return &Client{
		credentials: credentials,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

// Send posts message to the group identified by destinationID.
func (c *Client) Send(ctx context.Context, destinationID, message string) (*SendResponse, error) {
	cred, err := c.credential(ctx)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"api_key":    cred.APIKey,
		"number_key": cred.NumberKey,
		"group_id":   destinationID,
		"message":    message,
	}

	var result SendResponse
	if err := c.post(ctx, endpointSendGroup, body, &result); err != nil {
		return nil, err
	}

	if !statusOK(result.Status) {
		return &result, &APIError{
			StatusCode: http.StatusOK,
			Endpoint:   endpointSendGroup,
			Message:    result.Message,
		}
	}

	return &result, nil
}

// SendToGroup is Send for callers that only need the outcome.
func (c *Client) SendToGroup(ctx context.Context, destinationID, message string) error {
	resp, err := c.Send(ctx, destinationID, message)
	if err != nil {
		return err
	}
	c.logger.Debugw("messenger accepted group message", "group_id", destinationID, "response", resp.Message)
	return nil
}

// CheckStatus validates the configured api key against the provider.
func (c *Client) CheckStatus(ctx context.Context) (*Status, error) {
	cred, err := c.credential(ctx)
	if err != nil {
		return nil, err
	}

	var result struct {
		Status  json.RawMessage `json:"status"`
		Message string          `json:"message"`
	}
	if err := c.post(ctx, endpointCheckKey, map[string]any{"api_key": cred.APIKey}, &result); err != nil {
		return nil, err
	}

	return &Status{
		Connected: statusOK(result.Status),
		Message:   result.Message,
	}, nil
}

func (c *Client) credential(ctx context.Context) (setting.MessengerCredential, error) {
	cred, err := c.credentials.GetMessengerCredential(ctx)
	if err != nil {
		if errors.Is(err, ErrCredentialsMissing) {
			return cred, apperrors.NewConfigurationError("messenger credentials are not configured").Wrap(err)
		}
		return cred, fmt.Errorf("failed to resolve messenger credentials: %w", err)
	}
	return cred, nil
}

func (c *Client) post(ctx context.Context, endpoint string, body map[string]any, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		c.logger.Debugw("messenger request failed",
			"endpoint", endpoint,
			"status", resp.StatusCode,
		)
		return &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Message:    strings.TrimSpace(string(snippet)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// statusOK interprets the provider status field. Missing or unparseable
// values count as success since the HTTP layer already returned 2xx.
func statusOK(raw json.RawMessage) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return true
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch strings.ToLower(s) {
		case "true", "ok", "success":
			return true
		case "false", "error", "failed":
			return false
		}
		if code, err := strconv.Atoi(s); err == nil {
			return code >= 200 && code < 300
		}
		return true
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n >= 200 && n < 300
	}

	return true
}
