package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultModel = "gpt-4o-mini"

// Config configures the OpenAI-backed collaborators.
type Config struct {
	APIKey      string
	PlanModel   string
	VisionModel string

	// Prompts override the built-in system prompts when non-empty.
	DietPlanPrompt     string
	MealAnalysisPrompt string

	// BaseURL points the client at a compatible endpoint; used by tests.
	BaseURL string
}

// OpenAIClient implements DietPlanGenerator and MealImageAnalyzer using the OpenAI API.
type OpenAIClient struct {
	client      openai.Client
	planModel   string
	visionModel string
	dietPrompt  string
	mealPrompt  string
}

// NewOpenAIClient creates a new OpenAI client.
// Returns nil if the API key is empty.
func NewOpenAIClient(cfg Config) *OpenAIClient {
	if cfg.APIKey == "" {
		return nil
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL), option.WithMaxRetries(0))
	}

	c := &OpenAIClient{
		client:      openai.NewClient(opts...),
		planModel:   cfg.PlanModel,
		visionModel: cfg.VisionModel,
		dietPrompt:  cfg.DietPlanPrompt,
		mealPrompt:  cfg.MealAnalysisPrompt,
	}
	if c.planModel == "" {
		c.planModel = defaultModel
	}
	if c.visionModel == "" {
		c.visionModel = defaultModel
	}
	if c.dietPrompt == "" {
		c.dietPrompt = DefaultDietPlanPrompt
	}
	if c.mealPrompt == "" {
		c.mealPrompt = DefaultMealAnalysisPrompt
	}
	return c
}

// Model returns the diet plan model name.
func (c *OpenAIClient) Model() string {
	if c == nil {
		return ""
	}
	return c.planModel
}

// VisionModel returns the meal photo model name.
func (c *OpenAIClient) VisionModel() string {
	if c == nil {
		return ""
	}
	return c.visionModel
}

// jsonObjectFormat asks the model for a single JSON object reply.
func jsonObjectFormat() openai.ChatCompletionNewParamsResponseFormatUnion {
	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
	}
}

// GeneratePlan calls OpenAI to generate a diet plan.
func (c *OpenAIClient) GeneratePlan(ctx context.Context, payload domain.DietPromptPayload) (*domain.DietPlan, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	payloadJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize payload: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:          c.planModel,
		ResponseFormat: jsonObjectFormat(),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.dietPrompt),
			openai.UserMessage(fmt.Sprintf(dietPlanUserPromptTemplate, string(payloadJSON))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return ParseDietPlan(resp.Choices[0].Message.Content)
}

// AnalyzeMeal sends the photo inline as a data URL and parses the nutrition estimate.
func (c *OpenAIClient) AnalyzeMeal(ctx context.Context, image []byte, mimeType string, label domain.MealLabel) (*domain.MealAnalysis, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrOpenAIRequest, domain.ErrEmptyImage)
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:          c.visionModel,
		ResponseFormat: jsonObjectFormat(),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.mealPrompt),
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(fmt.Sprintf(mealAnalysisUserPromptTemplate, label)),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: dataURL}),
			}),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return ParseMealAnalysis(resp.Choices[0].Message.Content)
}
