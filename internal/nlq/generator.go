// Package nlq adapts an LLM chat API into the answer generator the
// analytics service consults for natural-language questions. The
// generator is an opaque collaborator: it receives a data summary and a
// question, and returns prose. All numbers in the summary are computed
// locally before the call.
package nlq

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/sightlinehq/sightline/internal/config"
)

// AnswerGenerator produces a prose answer to an analytics question given
// a JSON-serializable summary of the underlying data.
type AnswerGenerator interface {
	Answer(ctx context.Context, question string, dataSummary map[string]interface{}) (string, error)
}

const systemPrompt = `You are an analytics assistant. Analyze website analytics data and answer user questions with clear, actionable insights.

Data available:
%s

Provide concise, data-driven answers. Include specific numbers and trends.`

// OpenAIGenerator implements AnswerGenerator with an OpenAI-compatible
// chat completion API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
	log    *zap.Logger
}

// NewOpenAIGenerator builds a generator from config. A custom base URL
// allows pointing at any OpenAI-compatible endpoint.
func NewOpenAIGenerator(cfg *config.NLQ, log *zap.Logger) *OpenAIGenerator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		log:    log,
	}
}

// Answer sends the question with the data summary embedded in the system
// prompt and returns the model's reply.
func (g *OpenAIGenerator) Answer(ctx context.Context, question string, dataSummary map[string]interface{}) (string, error) {
	summaryJSON, err := json.MarshalIndent(dataSummary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal data summary: %w", err)
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(systemPrompt, summaryJSON),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: question,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	g.log.Info("NLQ answer generated",
		zap.String("model", g.model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens))

	return resp.Choices[0].Message.Content, nil
}
