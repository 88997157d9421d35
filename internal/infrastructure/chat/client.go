// Package chat implements the chat-completion client against an
// OpenAI-compatible HTTP API.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/masul-kr/artifact-keeper/internal/core/ports"
)

const defaultRequestTimeout = 30 * time.Second

// Config captures the settings of the chat-completion provider.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client talks to the chat-completion endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type completionRequest struct {
	Model    string              `json:"model"`
	Messages []ports.ChatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message ports.ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends the conversation and returns the content of the first choice.
func (c *Client) Generate(ctx context.Context, messages []ports.ChatMessage) (string, error) {
	body, err := json.Marshal(completionRequest{Model: c.cfg.Model, Messages: messages})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("chat completion: read body: %w", err)
	}

	var parsed completionResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("chat completion: decode: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("chat completion: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("chat completion: unexpected status %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("chat completion: empty response")
	}
	return parsed.Choices[0].Message.Content, nil
}
