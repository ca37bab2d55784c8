package openai

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

	"resume-roast/internal/llm"
)

// Presets for OpenAI-compatible chat completion endpoints.
const (
	GroqURL     = "https://api.groq.com/openai/v1/chat/completions"
	GroqModel   = "llama-3.1-8b-instant"
	OpenAIURL   = "https://api.openai.com/v1/chat/completions"
	OpenAIModel = "gpt-4o-mini"
)

// Options configures a Client.
type Options struct {
	// Provider labels errors and logs ("groq", "openai").
	Provider string
	APIKey   string
	Model    string
	URL      string
	Timeout  time.Duration
}

// Client implements llm.Client against an OpenAI-compatible Chat Completions API.
type Client struct {
	provider   string
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

// NewClient constructs a chat completions client.
func NewClient(opts Options) (*Client, error) {
	provider := strings.TrimSpace(opts.Provider)
	if provider == "" {
		provider = "openai"
	}
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, llm.MissingCredential(provider)
	}
	url, model := defaults(provider)
	if strings.TrimSpace(opts.URL) != "" {
		url = strings.TrimSpace(opts.URL)
	}
	if strings.TrimSpace(opts.Model) != "" {
		model = strings.TrimSpace(opts.Model)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		provider: provider,
		apiKey:   opts.APIKey,
		model:    model,
		url:      url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func defaults(provider string) (string, string) {
	if provider == "groq" {
		return GroqURL, GroqModel
	}
	return OpenAIURL, OpenAIModel
}

// Model returns the fixed model identifier used for every request.
func (c *Client) Model() string {
	return c.model
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt as a single user message and returns the first
// choice's content.
func (c *Client) Complete(ctx context.Context, in llm.Request) (string, error) {
	temp := in.Temperature
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: in.Prompt}},
		MaxTokens:   in.MaxTokens,
		Temperature: &temp,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", llm.ServiceError(c.provider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", llm.ServiceError(c.provider, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", llm.ServiceError(c.provider, fmt.Errorf("request timeout: %w", err))
		}
		return "", llm.ServiceError(c.provider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", llm.ServiceError(c.provider, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if resp.StatusCode >= 400 {
			return "", llm.ServiceError(c.provider, fmt.Errorf("http status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
		}
		return "", llm.ServiceError(c.provider, fmt.Errorf("response parse: %w", err))
	}
	if parsed.Error != nil {
		return "", llm.ServiceError(c.provider, fmt.Errorf("http status %d: %s (%s)", resp.StatusCode, parsed.Error.Message, parsed.Error.Type))
	}
	if resp.StatusCode >= 400 {
		return "", llm.ServiceError(c.provider, fmt.Errorf("http status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}
	if len(parsed.Choices) == 0 {
		return "", llm.ServiceError(c.provider, errors.New("response missing choices"))
	}

	return parsed.Choices[0].Message.Content, nil
}

var _ llm.Client = (*Client)(nil)
