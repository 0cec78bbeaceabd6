// Package polish optionally rewrites the profile summary through an
// OpenAI-compatible chat model. It is off by default and strictly
// best-effort: any failure leaves the record exactly as scraped.
package polish

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/linresume/internal/profile"
	"github.com/hyperifyio/linresume/internal/textnorm"
)

// Client is the minimal chat-completion surface the polisher calls.
// Mirrors the method on *openai.Client so any compatible backend or a
// test fake slots in.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewOpenAIClient builds a client against an OpenAI-compatible
// endpoint. An empty baseURL means the official API.
func NewOpenAIClient(baseURL, apiKey string) Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

const (
	defaultTimeout  = 30 * time.Second
	maxSummaryChars = 1200

	systemPrompt = "You are a resume editor. Rewrite the provided summary to be " +
		"concise and professional. Keep every fact; invent nothing. Reply with " +
		"the rewritten summary only, as plain text."
)

// Polisher rewrites the summary field. The zero value is inert.
type Polisher struct {
	Client  Client
	Model   string
	Timeout time.Duration
}

// Apply returns a copy of data with a polished summary. The original
// summary survives any error, an empty model reply, or a missing
// client.
func (p *Polisher) Apply(ctx context.Context, data profile.ProfileData) profile.ProfileData {
	if p == nil || p.Client == nil || strings.TrimSpace(data.Summary) == "" {
		return data
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: p.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: data.Summary},
		},
		Temperature: 0.3,
	}
	resp, err := p.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Warn().Err(err).Msg("summary polish failed; keeping the scraped summary")
		return data
	}
	if len(resp.Choices) == 0 {
		log.Warn().Msg("summary polish returned no choices; keeping the scraped summary")
		return data
	}
	rewritten := textnorm.Normalize(resp.Choices[0].Message.Content)
	if rewritten == "" {
		log.Warn().Msg("summary polish returned empty text; keeping the scraped summary")
		return data
	}

	out := data.Clone()
	out.Summary = textnorm.Truncate(rewritten, maxSummaryChars)
	return out
}
