package domain

// DayTotals accumulates macros over one local day. All fields are always present.
// @Description Macro totals for one local calendar day.
type DayTotals struct {
	Calories float64 `json:"calories" example:"1450"`
	Protein  float64 `json:"protein" example:"62"`
	Carbs    float64 `json:"carbs" example:"180"`
	Fats     float64 `json:"fats" example:"45"`
	Sugar    float64 `json:"sugar" example:"30"`
	Fiber    float64 `json:"fiber" example:"22"`
}

// Add folds the non-null values of m into the totals.
func (t *DayTotals) Add(m Macros) {
	t.Calories += valueOrZero(m.Calories)
	t.Protein += valueOrZero(m.Protein)
	t.Carbs += valueOrZero(m.Carbs)
	t.Fats += valueOrZero(m.Fats)
	t.Sugar += valueOrZero(m.Sugar)
	t.Fiber += valueOrZero(m.Fiber)
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Advisory tags emitted by meal timing analysis.
const (
	TagEarlyLunch             = "early_lunch"
	TagLongGapSnackSuggestion = "long_gap_snack_suggestion"
	TagLateDinner             = "late_dinner"
)

// TimingFeedback holds timing advisories for a newly logged meal.
// @Description Timing advisories; message is the space-joined advice text.
type TimingFeedback struct {
	Message string   `json:"message" example:"Your dinner is quite close to your sleep time."`
	Tags    []string `json:"tags" example:"late_dinner"`
}

// NextMealPlan is rule-based guidance for the next meal slot.
// @Description Guidance for the next meal derived from the last plate and the day so far.
type NextMealPlan struct {
	Summary     string   `json:"summary"`
	Headline    string   `json:"headline"`
	Suggestions []string `json:"suggestions"`
}

// MealInsights is the qualitative part of a meal photo analysis.
type MealInsights struct {
	BalanceScore        int      `json:"balance_score" example:"72"`
	Flags               []string `json:"flags"`
	NextMealSuggestions []string `json:"next_meal_suggestions"`
}

// AnalysisMeta records where an AI-shaped result came from.
type AnalysisMeta struct {
	Source string `json:"source" example:"openai" enums:"openai,fallback"`
}

const (
	SourceOpenAI   = "openai"
	SourceFallback = "fallback"
)

// MealAnalysis is the structured result of analysing a meal photo.
// @Description Nutrition estimate for a meal photo.
type MealAnalysis struct {
	DishName *string      `json:"dish_name" example:"Idli with sambar"`
	Metrics  Macros       `json:"metrics"`
	Summary  string       `json:"summary"`
	Guidance string       `json:"guidance"`
	Insights MealInsights `json:"insights"`
	Meta     AnalysisMeta `json:"meta"`
}

// LogMealResponse is everything produced by logging one meal.
// @Description Logged meal plus analysis, day totals, timing feedback and next-meal plan.
type LogMealResponse struct {
	Log            MealLogResponse `json:"log"`
	Analysis       MealAnalysis    `json:"analysis"`
	DayTotals      DayTotals       `json:"day_totals"`
	TimingFeedback TimingFeedback  `json:"timing_feedback"`
	NextMealPlan   NextMealPlan    `json:"next_meal_plan"`
	// Trace ID for feedback (only present when Langfuse is enabled)
	TraceID string `json:"trace_id,omitempty"`
}

// DailySummaryResponse lists one local day's meals and totals.
// @Description Totals and chronological meals for one local day.
type DailySummaryResponse struct {
	Date      string            `json:"date" example:"2024-01-16"`
	Timezone  string            `json:"timezone" example:"Asia/Kolkata"`
	DayTotals DayTotals         `json:"day_totals"`
	Meals     []MealLogResponse `json:"meals"`
}
