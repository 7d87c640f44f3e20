package llm

import (
	"errors"
	"testing"

	"github.com/blaisecz/nutrition-coach/internal/domain"
)

func TestParseMealAnalysis_Normalizes(t *testing.T) {
	content := "```json\n" + `{
  "dish_name": "Idli with sambar",
  "metrics": {"calories": 320, "protein": "11.5", "carbs": "lots", "fats": null, "sugar": 4},
  "summary": "Light breakfast.",
  "guidance": "Add protein.",
  "insights": {"balance_score": 64.6, "flags": ["low protein", 3]}
}` + "\n```"

	a, err := ParseMealAnalysis(content)
	if err != nil {
		t.Fatalf("ParseMealAnalysis() error = %v", err)
	}

	if a.DishName == nil || *a.DishName != "Idli with sambar" {
		t.Errorf("dish_name = %v", a.DishName)
	}
	if a.Metrics.Calories == nil || *a.Metrics.Calories != 320 {
		t.Errorf("calories = %v, want 320", a.Metrics.Calories)
	}
	if a.Metrics.Protein == nil || *a.Metrics.Protein != 11.5 {
		t.Errorf("protein = %v, want 11.5 from numeric string", a.Metrics.Protein)
	}
	if a.Metrics.Carbs != nil {
		t.Errorf("carbs = %v, want nil for non-numeric value", *a.Metrics.Carbs)
	}
	if a.Metrics.Fats != nil || a.Metrics.Fiber != nil {
		t.Error("expected null and missing macros to stay nil")
	}
	if a.Insights.BalanceScore != 65 {
		t.Errorf("balance_score = %d, want 65", a.Insights.BalanceScore)
	}
	if len(a.Insights.Flags) != 1 || a.Insights.Flags[0] != "low protein" {
		t.Errorf("flags = %v", a.Insights.Flags)
	}
	if a.Insights.NextMealSuggestions == nil || len(a.Insights.NextMealSuggestions) != 0 {
		t.Errorf("next_meal_suggestions = %v, want empty", a.Insights.NextMealSuggestions)
	}
	if a.Meta.Source != domain.SourceOpenAI {
		t.Errorf("meta.source = %q, want openai", a.Meta.Source)
	}
}

func TestParseMealAnalysis_Defaults(t *testing.T) {
	a, err := ParseMealAnalysis(`{"insights": "not an object", "meta": {"source": "custom"}}`)
	if err != nil {
		t.Fatalf("ParseMealAnalysis() error = %v", err)
	}

	if a.Insights.BalanceScore != DefaultBalanceScore {
		t.Errorf("balance_score = %d, want %d", a.Insights.BalanceScore, DefaultBalanceScore)
	}
	if a.Insights.Flags == nil || a.Insights.NextMealSuggestions == nil {
		t.Error("expected empty, non-nil insight slices")
	}
	if a.DishName != nil {
		t.Errorf("dish_name = %q, want nil", *a.DishName)
	}
	if a.Meta.Source != "custom" {
		t.Errorf("meta.source = %q, want custom", a.Meta.Source)
	}
}

func TestParseMealAnalysis_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"prose", "I cannot see any food in this image."},
		{"null", "null"},
		{"fenced null", "```json\nnull\n```"},
		{"array", `[{"dish_name": "Dosa"}]`},
		{"number", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseMealAnalysis(tt.content)
			if !errors.Is(err, ErrOpenAIResponse) {
				t.Errorf("error = %v, want ErrOpenAIResponse", err)
			}
			if a != nil {
				t.Errorf("analysis = %+v, want nil", a)
			}
		})
	}
}

func TestParseDietPlan(t *testing.T) {
	content := `{
  "meals": {
    "breakfast": {"title": "Breakfast", "scheduled_time": "08:00", "summary": "Light start", "items": ["Poha (1 bowl)"]},
    "dinner": {"title": "Dinner", "scheduled_time": null, "summary": "Early dinner"}
  },
  "hydration": {"summary": "Sip through the day"},
  "lifestyle": {"sleep_hours": 6.5, "dinner_timing_feedback": "Move dinner earlier"}
}`

	plan, err := ParseDietPlan(content)
	if err != nil {
		t.Fatalf("ParseDietPlan() error = %v", err)
	}

	if plan.Meta.Source != domain.SourceOpenAI {
		t.Errorf("meta.source = %q, want openai", plan.Meta.Source)
	}
	if plan.Meals.Breakfast.ScheduledTime == nil || *plan.Meals.Breakfast.ScheduledTime != "08:00" {
		t.Errorf("breakfast time = %v", plan.Meals.Breakfast.ScheduledTime)
	}
	if plan.Meals.Dinner.Items == nil || plan.Meals.Lunch.Items == nil {
		t.Error("expected missing items to become empty slices")
	}
	if plan.Hydration.TimingSuggestions == nil {
		t.Error("expected empty hydration timing suggestions")
	}
	if plan.Lifestyle.SleepStatus != domain.SleepStatusUnknown {
		t.Errorf("sleep_status = %q, want unknown", plan.Lifestyle.SleepStatus)
	}
}

func TestParseDietPlan_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"broken json", "{not json"},
		{"null", "null"},
		{"string", `"eat more vegetables"`},
		{"empty object", "{}"},
		{"empty meals", `{"meals": {}, "hydration": {"summary": "Drink water"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := ParseDietPlan(tt.content)
			if !errors.Is(err, ErrOpenAIResponse) {
				t.Errorf("error = %v, want ErrOpenAIResponse", err)
			}
			if plan != nil {
				t.Errorf("plan = %+v, want nil", plan)
			}
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"whitespace", "  \n{\"a\":1}\n ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.in); got != tt.want {
				t.Errorf("stripCodeFences() = %q, want %q", got, tt.want)
			}
		})
	}
}
