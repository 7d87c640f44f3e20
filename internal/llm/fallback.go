package llm

import (
	"strings"

	"github.com/blaisecz/nutrition-coach/internal/domain"
)

const (
	fallbackBlockSummary = "Choose 1–2 options; keep portions moderate and protein‑anchored."

	dinnerFeedbackKnown   = "Dinner timing looks reasonable against your sleep window."
	dinnerFeedbackUnknown = "Set both dinner and sleep time to unlock precise feedback."
	workoutWindow         = "Aim for a consistent 30–45 minute window in the morning or early evening."
	hydrationSummary      = "Hydrate steadily across the day, focusing on your wake window rather than late-night intake."
)

var hydrationTiming = []string{
	"One glass within 30 minutes of waking.",
	"Small sips between breakfast and lunch, avoiding chugging with meals.",
	"Water or herbal tea between lunch and dinner, tapering 1 hour before sleep.",
}

// BuildFallbackDietPlan returns a timing-aware template plan without calling a model.
// The result depends only on the payload.
func BuildFallbackDietPlan(payload domain.DietPromptPayload) domain.DietPlan {
	timing := payload.LifestyleTiming
	pref := strings.ToLower(strings.TrimSpace(payload.DietPreferences.DietPreference))
	regional := strings.TrimSpace(payload.DietPreferences.RegionalCuisine)

	isVeg := pref == "vegetarian" || pref == "vegan" || pref == "jain"
	isVegan := pref == "vegan"

	vegProtein := "paneer/curd"
	dairy := "curd/Greek yogurt"
	if isVegan {
		vegProtein = "tofu/soya chunks"
		dairy = "unsweetened soy/almond yogurt"
	}

	hint := ""
	if regional != "" {
		hint = " (" + regional + ")"
	}

	choose := func(veg, nonVeg []string) []string {
		if isVeg {
			return veg
		}
		return nonVeg
	}

	meals := domain.DietMeals{
		EarlyMorning: fallbackBlock("Early Morning"+hint, timing.WakeTime, []string{
			"Warm water + lemon OR jeera water (1 glass)",
			"Soaked almonds (4–6) OR 1 banana (if workout soon)",
		}),
		Breakfast: fallbackBlock("Breakfast"+hint, timing.BreakfastTime, choose(
			[]string{
				"Moong dal chilla (2) + mint chutney + " + dairy + " (1/2 cup)",
				"Vegetable poha (1 bowl) + sprouts (1/2 cup)",
				"Oats upma (1 bowl) + peanuts (1 tbsp)",
			},
			[]string{
				"Veg poha/upma (1 bowl) + boiled eggs (2)",
				"Masala oats (1 bowl) + omelette (2 eggs)",
				"Idli (3) + sambar (1 bowl) + egg bhurji (small bowl)",
			},
		)),
		MidMorningSnack: fallbackBlock("Mid‑morning Snack", timing.SnackTime, []string{
			"Fruit (apple/guava/orange) + " + dairy + " (1/2 cup)",
			"Roasted chana (1 handful) + coconut water (optional)",
		}),
		Lunch: fallbackBlock("Lunch"+hint, timing.LunchTime, choose(
			[]string{
				"2 phulka/chapati + dal (1 bowl) + sabzi (1 bowl) + salad",
				"Rice (1 cup) + rajma/chole (1 bowl) + salad",
				"Curd (1/2 cup) + " + vegProtein + " bhurji (small bowl) + sabzi",
			},
			[]string{
				"2 phulka/chapati + dal (1 bowl) + sabzi (1 bowl) + salad",
				"Rice (1 cup) + chicken curry (1 bowl) + salad",
				"Fish/chicken (palm-size) + sabzi (1 bowl) + 1 roti",
			},
		)),
		EveningSnack: fallbackBlock("Evening Snack", timing.SnackTime, choose(
			[]string{
				"Sprouts chaat (1 bowl) OR makhana (2 cups)",
				"Paneer/tofu tikka (palm-size) OR " + dairy + " bowl + seeds (1 tsp)",
			},
			[]string{
				"Egg bhurji (2 eggs) OR chicken salad (small bowl)",
				"Makhana (2 cups) + buttermilk (1 glass)",
			},
		)),
		Dinner: fallbackBlock("Dinner"+hint, timing.DinnerTime, choose(
			[]string{
				"Moong dal khichdi (1 bowl) + salad + pickle (small)",
				"Paneer/tofu + mixed veg stir-fry (1 bowl) + 1 roti",
				"Dal + sabzi + 1–2 roti (lighter than lunch)",
			},
			[]string{
				"Chicken/fish (palm-size) + sautéed veggies (1–2 bowls)",
				"Egg curry (2 eggs) + salad + 1 roti",
				"Dal + sabzi + 1 roti (light)",
			},
		)),
	}

	dinnerFeedback := dinnerFeedbackUnknown
	if present(timing.DinnerTime) && present(timing.SleepTime) {
		dinnerFeedback = dinnerFeedbackKnown
	}

	status := payload.SleepAnalysis.SleepStatus
	if status == "" {
		status = domain.SleepStatusUnknown
	}

	return domain.DietPlan{
		Meta:  domain.AnalysisMeta{Source: domain.SourceFallback},
		Meals: meals,
		Hydration: domain.HydrationPlan{
			Summary:           hydrationSummary,
			TimingSuggestions: append([]string(nil), hydrationTiming...),
		},
		Lifestyle: domain.LifestyleAdvice{
			SleepHours:               copyFloat(payload.SleepAnalysis.SleepHours),
			SleepStatus:              status,
			DinnerTimingFeedback:     dinnerFeedback,
			RecommendedWorkoutWindow: workoutWindow,
		},
	}
}

func fallbackBlock(title string, scheduled *string, items []string) domain.MealBlock {
	return domain.MealBlock{
		Title:         title,
		ScheduledTime: copyString(scheduled),
		Summary:       fallbackBlockSummary,
		Items:         items,
	}
}

// Offline meal estimate, before per-label overrides.
const (
	fallbackCalories = 350.0
	fallbackProtein  = 15.0
	fallbackCarbs    = 45.0
	fallbackFats     = 10.0
	fallbackSugar    = 8.0
	fallbackFiber    = 6.0

	fallbackBalanceScore = 72
	fallbackMealSummary  = "Example balanced meal with moderate calories and reasonable protein for the selected meal type."
	fallbackMealGuidance = "Use this as a demo estimate. Once AI photo analysis is connected, values will adapt to the actual photo. " +
		"Aim for at least 20–30 g protein at main meals, plenty of vegetables, and mostly whole grains."
	fallbackMealFlag = "Demo-only estimate (offline mode)"
)

var fallbackNextMealSuggestions = []string{
	"If this meal was light on protein, make the next one protein‑anchored: dal + sabzi + 1–2 phulka, or grilled paneer/tofu/chicken with salad.",
	"If this was a heavier meal, choose a lighter next plate: mostly vegetables + a small portion of whole grains (1 roti or 1/2 cup rice).",
	"Keep sugary drinks minimal; prefer water, buttermilk, unsweetened tea or coffee.",
	"If this was dinner, avoid additional heavy snacks afterwards and focus on hydration and sleep routine.",
}

// BuildFallbackMealAnalysis returns a per-label template estimate for offline use.
func BuildFallbackMealAnalysis(label domain.MealLabel) domain.MealAnalysis {
	calories, protein := fallbackCalories, fallbackProtein
	switch domain.MealLabel(strings.ToLower(string(label))) {
	case domain.MealLabelBreakfast:
		calories, protein = 400, 18
	case domain.MealLabelLunch:
		calories, protein = 550, 22
	case domain.MealLabelDinner:
		calories, protein = 450, 20
	case domain.MealLabelSnack:
		calories, protein = 200, 8
	}

	return domain.MealAnalysis{
		DishName: nil,
		Metrics: domain.Macros{
			Calories: floatPtr(calories),
			Protein:  floatPtr(protein),
			Carbs:    floatPtr(fallbackCarbs),
			Fats:     floatPtr(fallbackFats),
			Sugar:    floatPtr(fallbackSugar),
			Fiber:    floatPtr(fallbackFiber),
		},
		Summary:  fallbackMealSummary,
		Guidance: fallbackMealGuidance,
		Insights: domain.MealInsights{
			BalanceScore:        fallbackBalanceScore,
			Flags:               []string{fallbackMealFlag},
			NextMealSuggestions: append([]string(nil), fallbackNextMealSuggestions...),
		},
		Meta: domain.AnalysisMeta{Source: domain.SourceFallback},
	}
}

func present(s *string) bool {
	return s != nil && *s != ""
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
