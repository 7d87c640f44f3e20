// Package llm wraps the AI collaborators used for diet plans and meal photo analysis.
// Every collaborator has a deterministic local fallback in this package.
package llm

import (
	"context"
	"errors"

	"github.com/blaisecz/nutrition-coach/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DietPlanGenerator produces a structured diet plan from the combined user context.
type DietPlanGenerator interface {
	GeneratePlan(ctx context.Context, payload domain.DietPromptPayload) (*domain.DietPlan, error)
	// Model names the model used, for bookkeeping.
	Model() string
}

// MealImageAnalyzer estimates nutrition from a meal photo.
type MealImageAnalyzer interface {
	AnalyzeMeal(ctx context.Context, image []byte, mimeType string, label domain.MealLabel) (*domain.MealAnalysis, error)
}
