package OpenAI

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-4o-mini"
	maxTokens      = 1500
)

var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	Messages       []Message       `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Client talks to the chat-completions endpoint. The credential is read from
// the environment at construction time and its absence is a hard error, never
// silently defaulted.
type Client struct {
	httpClient *resty.Client
	model      string
}

func NewClient() (*Client, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(90 * time.Second).
		SetAuthToken(key).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{httpClient: httpClient, model: model}, nil
}

// ChatJSON requests a completion in constrained structured-JSON output mode.
func (c *Client) ChatJSON(ctx context.Context, system, user string) (string, error) {
	return c.complete(ctx, system, user, &responseFormat{Type: "json_object"}, 0.2)
}

// Chat requests an unconstrained completion.
func (c *Client) Chat(ctx context.Context, system, user string) (string, error) {
	return c.complete(ctx, system, user, nil, 0.7)
}

func (c *Client) complete(ctx context.Context, system, user string, format *responseFormat, temperature float64) (string, error) {
	request := chatRequest{
		Model:       c.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: format,
	}

	var response chatResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&response).
		SetError(&response).
		Post("/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("failed to call completion API: %w", err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("completion API error: %s", response.Error.Message)
	}
	if resp.IsError() {
		return "", fmt.Errorf("completion API returned status %d", resp.StatusCode())
	}
	if len(response.Choices) == 0 {
		return "", errors.New("completion API returned no choices")
	}
	return response.Choices[0].Message.Content, nil
}
