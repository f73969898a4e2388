package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

const (
	defaultGeminiModelName = "gemini-1.5-flash-latest"
	defaultOpenAIModelName = openai.GPT4oMini
)

type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type GenerationRequest struct {
	Messages  []ChatMessage
	MaxTokens int
}

type GenerationResult struct {
	Text  string
	Usage TokenUsage
}

// GenerationClient is the boundary to the completion service. Implementations
// make exactly one attempt per call and honor ctx cancellation.
type GenerationClient interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error)
}

// GeminiClient talks to Gemini. System messages become the model's system
// instruction, one part per message, in order.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	if modelName == "" {
		modelName = defaultGeminiModelName
	}
	return &GeminiClient{client: client, modelName: modelName}, nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func (c *GeminiClient) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	var systemParts []genai.Part
	var userParts []genai.Part
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			systemParts = append(systemParts, genai.Text(m.Content))
		case RoleUser:
			userParts = append(userParts, genai.Text(m.Content))
		default:
			return nil, fmt.Errorf("unsupported message role %q", m.Role)
		}
	}
	if len(userParts) == 0 {
		return nil, fmt.Errorf("no user message to send")
	}

	model := c.client.GenerativeModel(c.modelName)
	if len(systemParts) > 0 {
		model.SystemInstruction = &genai.Content{Parts: systemParts}
	}
	maxTokens := int32(req.MaxTokens)
	model.GenerationConfig = genai.GenerationConfig{
		MaxOutputTokens: &maxTokens,
	}

	resp, err := model.GenerateContent(ctx, userParts...)
	if err != nil {
		return nil, fmt.Errorf("gemini generate request failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini response had no candidates")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("gemini response had no text")
	}

	result := &GenerationResult{Text: text.String()}
	if u := resp.UsageMetadata; u != nil {
		result.Usage = TokenUsage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	return result, nil
}

// OpenAIClient talks to any OpenAI-compatible chat completion endpoint.
type OpenAIClient struct {
	client    *openai.Client
	modelName string
}

func NewOpenAIClient(apiKey, baseURL, modelName string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if modelName == "" {
		modelName = defaultOpenAIModelName
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), modelName: modelName}
}

func (c *OpenAIClient) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.modelName,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai response had no choices")
	}
	if resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("openai response had no text")
	}

	return &GenerationResult{
		Text: resp.Choices[0].Message.Content,
		Usage: TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
