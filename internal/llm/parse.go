package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/blaisecz/nutrition-coach/internal/domain"
)

// Defaults applied when a model response omits insight fields.
const (
	DefaultBalanceScore = 50
	minBalanceScore     = 0
	maxBalanceScore     = 100
)

// ParseDietPlan decodes a model response into a diet plan.
// Missing item lists become empty and meta.source defaults to openai.
// A reply that is not a JSON object, or has no meal blocks, is ErrOpenAIResponse.
func ParseDietPlan(content string) (*domain.DietPlan, error) {
	body, err := objectBody(content)
	if err != nil {
		return nil, err
	}
	var plan domain.DietPlan
	if err := json.Unmarshal([]byte(body), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if !hasMealBlocks(plan.Meals) {
		return nil, fmt.Errorf("%w: plan has no meal blocks", ErrOpenAIResponse)
	}

	if plan.Meta.Source == "" {
		plan.Meta.Source = domain.SourceOpenAI
	}
	for _, block := range []*domain.MealBlock{
		&plan.Meals.EarlyMorning,
		&plan.Meals.Breakfast,
		&plan.Meals.MidMorningSnack,
		&plan.Meals.Lunch,
		&plan.Meals.EveningSnack,
		&plan.Meals.Dinner,
	} {
		if block.Items == nil {
			block.Items = []string{}
		}
	}
	if plan.Hydration.TimingSuggestions == nil {
		plan.Hydration.TimingSuggestions = []string{}
	}
	if plan.Lifestyle.SleepStatus == "" {
		plan.Lifestyle.SleepStatus = domain.SleepStatusUnknown
	}

	return &plan, nil
}

// rawMealAnalysis mirrors the expected response loosely so that malformed
// fields can be normalised instead of failing the whole decode.
type rawMealAnalysis struct {
	DishName any             `json:"dish_name"`
	Metrics  map[string]any  `json:"metrics"`
	Summary  any             `json:"summary"`
	Guidance any             `json:"guidance"`
	Insights json.RawMessage `json:"insights"`
	Meta     json.RawMessage `json:"meta"`
}

type rawInsights struct {
	BalanceScore any   `json:"balance_score"`
	Flags        []any `json:"flags"`
	Suggestions  []any `json:"next_meal_suggestions"`
}

// ParseMealAnalysis decodes a model response into a meal analysis.
// Non-numeric macros become null; missing insights take defaults.
func ParseMealAnalysis(content string) (*domain.MealAnalysis, error) {
	body, err := objectBody(content)
	if err != nil {
		return nil, err
	}
	var raw rawMealAnalysis
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	analysis := &domain.MealAnalysis{
		Summary:  stringOf(raw.Summary),
		Guidance: stringOf(raw.Guidance),
		Metrics: domain.Macros{
			Calories: numberOf(raw.Metrics["calories"]),
			Protein:  numberOf(raw.Metrics["protein"]),
			Carbs:    numberOf(raw.Metrics["carbs"]),
			Fats:     numberOf(raw.Metrics["fats"]),
			Sugar:    numberOf(raw.Metrics["sugar"]),
			Fiber:    numberOf(raw.Metrics["fiber"]),
		},
		Insights: domain.MealInsights{
			BalanceScore:        DefaultBalanceScore,
			Flags:               []string{},
			NextMealSuggestions: []string{},
		},
		Meta: domain.AnalysisMeta{Source: domain.SourceOpenAI},
	}

	if name := strings.TrimSpace(stringOf(raw.DishName)); name != "" {
		analysis.DishName = &name
	}

	var insights rawInsights
	if len(raw.Insights) > 0 && json.Unmarshal(raw.Insights, &insights) == nil {
		if score := numberOf(insights.BalanceScore); score != nil {
			analysis.Insights.BalanceScore = clampScore(*score)
		}
		analysis.Insights.Flags = stringsOf(insights.Flags)
		analysis.Insights.NextMealSuggestions = stringsOf(insights.Suggestions)
	}

	var meta domain.AnalysisMeta
	if len(raw.Meta) > 0 && json.Unmarshal(raw.Meta, &meta) == nil && meta.Source != "" {
		analysis.Meta.Source = meta.Source
	}

	return analysis, nil
}

// objectBody strips code fences and requires a top-level JSON object.
func objectBody(content string) (string, error) {
	s := stripCodeFences(content)
	if !strings.HasPrefix(s, "{") {
		return "", fmt.Errorf("%w: expected a JSON object", ErrOpenAIResponse)
	}
	return s, nil
}

func hasMealBlocks(meals domain.DietMeals) bool {
	for _, b := range []domain.MealBlock{
		meals.EarlyMorning,
		meals.Breakfast,
		meals.MidMorningSnack,
		meals.Lunch,
		meals.EveningSnack,
		meals.Dinner,
	} {
		if b.Title != "" || b.Summary != "" || b.ScheduledTime != nil || len(b.Items) > 0 {
			return true
		}
	}
	return false
}

// stripCodeFences removes a surrounding ``` or ```json fence if the model added one.
func stripCodeFences(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func numberOf(v any) *float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func stringOf(v any) string {
	s, _ := v.(string)
	return s
}

func stringsOf(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func clampScore(v float64) int {
	score := int(math.Round(v))
	if score < minBalanceScore {
		return minBalanceScore
	}
	if score > maxBalanceScore {
		return maxBalanceScore
	}
	return score
}
