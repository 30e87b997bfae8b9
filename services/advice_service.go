package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Adviser sends a composed prompt to a generative-text backend.
type Adviser interface {
	Send(ctx context.Context, prompt string) string
}

const systemRole = "You are a professional fitness and nutrition AI assistant."

// AdviceService calls an OpenAI-compatible chat-completion endpoint.
// Failures never propagate: the caller always gets a displayable answer,
// degraded to an apology when the backend is unreachable.
type AdviceService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewAdviceService(apiKey, model, baseURL string) *AdviceService {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &AdviceService{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: 15 * time.Second,
	}
}

func (s *AdviceService) Send(ctx context.Context, prompt string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemRole},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		slog.Error("advice request failed", "error", err)
		return apology(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		slog.Warn("advice backend returned no choices")
		return apology(fmt.Errorf("empty response from model"))
	}

	return resp.Choices[0].Message.Content
}

func apology(err error) string {
	return fmt.Sprintf("I apologize, but I'm having trouble processing your request right now. Please try again later. Error: %v", err)
}
