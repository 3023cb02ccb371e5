// Package llm wraps the chat-completion API the classifier talks to.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const DefaultModel = openai.GPT4o

var ErrEmptyResponse = errors.New("completion returned no choices")

type Role string

const (
	RoleSystem Role = openai.ChatMessageRoleSystem
	RoleUser   Role = openai.ChatMessageRoleUser
)

type Message struct {
	Role    Role
	Content string
}

// Completer returns the text of the first completion choice.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Observer is told about every completion call. It may be nil.
type Observer interface {
	ObserveCompletion(err error, seconds float64)
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Client struct {
	api      *openai.Client
	model    string
	observer Observer
}

func NewClient(cfg Config, observer Observer) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		api:      openai.NewClientWithConfig(oc),
		model:    model,
		observer: observer,
	}
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: string(m.Role), Content: m.Content})
	}

	timer := startTimer()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err == nil && len(resp.Choices) == 0 {
		err = ErrEmptyResponse
	}
	if c.observer != nil {
		c.observer.ObserveCompletion(err, timer())
	}
	if err != nil {
		return "", fmt.Errorf("chat completion (%s): %w", c.model, err)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
