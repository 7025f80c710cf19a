package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const DefaultModel = "gpt-4o-mini"

// DefaultSystemPrompt is used unless a managed prompt replaces it.
const DefaultSystemPrompt = `You are a non-medical sleep and activity assistant.

You receive one day of data from a wrist tracker: the night that ended on that date and the activity totals of the same date. Base your conclusions only on the provided data.

Your goals:
- Describe the night in clear, neutral language: when the user fell asleep, when they woke up, how long they slept, and how the time split across deep, light, REM and awake.
- Relate the night to the day's activity (steps, active minutes, resting heart rate) when it helps.
- Give practical, behavioral suggestions.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- A missing field means the tracker did not report it. Say so instead of guessing.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences about the night and the day.",
  "observations": ["2-5 short observations grounded in the numbers."],
  "guidance": ["2-4 concrete, non-medical suggestions."]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing one day.

- "sleep" holds the night: minutes asleep and in bed from the day summary, per-stage minutes, the stored efficiency of the main sleep, and the clock times the user fell asleep and woke up.
- "activity" holds steps, active minutes, calories, resting heart rate and goal progress in percent.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating daily insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a daily report and returns LLM-generated commentary.
	GenerateInsights(ctx context.Context, report *domain.DailyReport) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty. An empty systemPrompt selects DefaultSystemPrompt.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = DefaultModel
	}
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultSystemPrompt
	}

	return &OpenAIClient{
		client:       openai.NewClient(option.WithAPIKey(apiKey)),
		model:        model,
		systemPrompt: systemPrompt,
	}
}

func (c *OpenAIClient) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// GenerateInsights calls OpenAI to comment on one day.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, report *domain.DailyReport) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	userPrompt, err := BuildUserPrompt(report)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return ParseOutput(resp.Choices[0].Message.Content)
}

// BuildUserPrompt renders the report into the user message.
func BuildUserPrompt(report *domain.DailyReport) (string, error) {
	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to serialize report: %v", ErrOpenAIRequest, err)
	}
	return fmt.Sprintf(userPromptTemplate, string(reportJSON)), nil
}

// ParseOutput decodes the model reply. A reply wrapped in a markdown code
// fence is accepted.
func ParseOutput(content string) (*domain.LLMInsightsOutput, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if output.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	return &output, nil
}
