package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultSystemPrompt is used when no managed prompt is available.
const DefaultSystemPrompt = `You are a non-medical wellness coach for a wearable sensor.

You receive a burnout assessment built from sleep, sedentary behaviour, heart rate variability and room
environment, plus an instant wellness index from the latest reading. Base every statement on the provided data.

Your goals:
- Summarize the wearer's day in clear, neutral language.
- Point out which component (sleep, sedentary time, stress, environment) drives the burnout score.
- Give practical, behavioral suggestions.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- If an analysis reports an error or too little data, say so explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the wearer's wellness signals.",
  "observations": ["3-6 items about the strongest contributing factors."],
  "guidance": ["3-5 concrete, non-medical suggestions tailored to these numbers."]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing the wearer's last %d hours (%d readings).

- "burnout" holds the burnout score, its level, the contributing impacts (0-100, higher is worse) and the
  sleep, sedentary and stress analyses it was built from.
- "live", when present, is the instant wellness index of the most recent reading (higher is better).

JSON:

%s

Based on this data, respond in the required JSON format.`

// CoachingLLM generates wellness coaching from analysis results.
type CoachingLLM interface {
	GenerateCoaching(ctx context.Context, in *domain.CoachingContext) (*domain.CoachingOutput, error)
}

// ClientConfig configures the OpenAI coaching client.
type ClientConfig struct {
	APIKey       string
	Model        string
	BaseURL      string // optional, for compatible gateways
	SystemPrompt string // optional, overrides DefaultSystemPrompt
}

// OpenAIClient implements CoachingLLM using the OpenAI chat completions API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient returns nil when no API key is configured.
func NewOpenAIClient(cfg ClientConfig) *OpenAIClient {
	if cfg.APIKey == "" {
		return nil
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if strings.TrimSpace(cfg.SystemPrompt) == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL), option.WithMaxRetries(0))
	}

	return &OpenAIClient{
		client:       openai.NewClient(opts...),
		model:        cfg.Model,
		systemPrompt: cfg.SystemPrompt,
	}
}

// Model returns the configured model name.
func (c *OpenAIClient) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

func (c *OpenAIClient) GenerateCoaching(ctx context.Context, in *domain.CoachingContext) (*domain.CoachingOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, in.WindowHours, in.Readings, contextJSON)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	var out domain.CoachingOutput
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if out.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}

	return &out, nil
}
