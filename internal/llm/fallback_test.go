package llm

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/blaisecz/nutrition-coach/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func samplePayload(pref, regional string) domain.DietPromptPayload {
	hours := 7.5
	return domain.DietPromptPayload{
		DietPreferences: domain.DietPreferences{DietPreference: pref, RegionalCuisine: regional},
		LifestyleTiming: domain.LifestyleTiming{
			WakeTime:      strPtr("06:30"),
			BreakfastTime: strPtr("08:00"),
			LunchTime:     strPtr("13:00"),
			SnackTime:     strPtr("17:00"),
			DinnerTime:    strPtr("20:00"),
			SleepTime:     strPtr("23:00"),
		},
		SleepAnalysis: domain.SleepAnalysis{SleepHours: &hours, SleepStatus: domain.SleepStatusOptimal},
	}
}

func TestBuildFallbackDietPlan_Deterministic(t *testing.T) {
	payload := samplePayload("vegan", "South Indian")

	first, err := json.Marshal(BuildFallbackDietPlan(payload))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(BuildFallbackDietPlan(payload))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if string(first) != string(second) {
		t.Error("expected identical output for identical payloads")
	}
}

func TestBuildFallbackDietPlan_Preferences(t *testing.T) {
	tests := []struct {
		name        string
		pref        string
		wantInLunch string
		wantInSnack string
		wantAbsent  string
	}{
		{
			name:        "vegetarian",
			pref:        "vegetarian",
			wantInLunch: "paneer/curd bhurji",
			wantInSnack: "curd/Greek yogurt",
			wantAbsent:  "chicken",
		},
		{
			name:        "vegan swaps dairy",
			pref:        "Vegan",
			wantInLunch: "tofu/soya chunks bhurji",
			wantInSnack: "unsweetened soy/almond yogurt",
			wantAbsent:  "chicken",
		},
		{
			name:        "jain uses veg menu",
			pref:        "jain",
			wantInLunch: "rajma/chole",
			wantInSnack: "curd/Greek yogurt",
			wantAbsent:  "egg",
		},
		{
			name:        "non-veg",
			pref:        "non-veg",
			wantInLunch: "chicken curry",
			wantInSnack: "curd/Greek yogurt",
			wantAbsent:  "bhurji (small bowl) + sabzi",
		},
		{
			name:        "unknown preference is non-veg",
			pref:        "",
			wantInLunch: "Fish/chicken",
			wantInSnack: "curd/Greek yogurt",
			wantAbsent:  "rajma",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildFallbackDietPlan(samplePayload(tt.pref, ""))

			lunch := strings.Join(plan.Meals.Lunch.Items, "\n")
			if !strings.Contains(lunch, tt.wantInLunch) {
				t.Errorf("lunch items %q missing %q", lunch, tt.wantInLunch)
			}
			snack := strings.Join(plan.Meals.MidMorningSnack.Items, "\n")
			if !strings.Contains(snack, tt.wantInSnack) {
				t.Errorf("mid-morning items %q missing %q", snack, tt.wantInSnack)
			}
			lunchDinner := lunch + strings.Join(plan.Meals.Dinner.Items, "\n")
			if strings.Contains(strings.ToLower(lunchDinner), tt.wantAbsent) {
				t.Errorf("did not expect %q in lunch/dinner items", tt.wantAbsent)
			}
		})
	}
}

func TestBuildFallbackDietPlan_ScheduleAndTitles(t *testing.T) {
	plan := BuildFallbackDietPlan(samplePayload("vegetarian", "Bengali"))

	checks := []struct {
		block domain.MealBlock
		title string
		time  string
	}{
		{plan.Meals.EarlyMorning, "Early Morning (Bengali)", "06:30"},
		{plan.Meals.Breakfast, "Breakfast (Bengali)", "08:00"},
		{plan.Meals.MidMorningSnack, "Mid‑morning Snack", "17:00"},
		{plan.Meals.Lunch, "Lunch (Bengali)", "13:00"},
		{plan.Meals.EveningSnack, "Evening Snack", "17:00"},
		{plan.Meals.Dinner, "Dinner (Bengali)", "20:00"},
	}
	for _, c := range checks {
		if c.block.Title != c.title {
			t.Errorf("title = %q, want %q", c.block.Title, c.title)
		}
		if c.block.ScheduledTime == nil || *c.block.ScheduledTime != c.time {
			t.Errorf("%s scheduled_time = %v, want %s", c.title, c.block.ScheduledTime, c.time)
		}
		if c.block.Summary != fallbackBlockSummary {
			t.Errorf("%s summary = %q", c.title, c.block.Summary)
		}
	}

	if plan.Meta.Source != domain.SourceFallback {
		t.Errorf("meta.source = %q, want fallback", plan.Meta.Source)
	}
	if plan.Lifestyle.DinnerTimingFeedback != dinnerFeedbackKnown {
		t.Errorf("dinner feedback = %q", plan.Lifestyle.DinnerTimingFeedback)
	}
	if plan.Lifestyle.SleepHours == nil || *plan.Lifestyle.SleepHours != 7.5 {
		t.Errorf("sleep_hours = %v, want 7.5", plan.Lifestyle.SleepHours)
	}
	if plan.Lifestyle.SleepStatus != domain.SleepStatusOptimal {
		t.Errorf("sleep_status = %q", plan.Lifestyle.SleepStatus)
	}
	if len(plan.Hydration.TimingSuggestions) != 3 {
		t.Errorf("expected 3 hydration suggestions, got %d", len(plan.Hydration.TimingSuggestions))
	}
}

func TestBuildFallbackDietPlan_MissingSchedule(t *testing.T) {
	payload := domain.DietPromptPayload{
		LifestyleTiming: domain.LifestyleTiming{DinnerTime: strPtr("20:00")},
	}

	plan := BuildFallbackDietPlan(payload)

	if plan.Meals.Breakfast.ScheduledTime != nil {
		t.Errorf("expected null breakfast time, got %q", *plan.Meals.Breakfast.ScheduledTime)
	}
	if plan.Lifestyle.DinnerTimingFeedback != dinnerFeedbackUnknown {
		t.Errorf("dinner feedback = %q, want unknown-schedule text", plan.Lifestyle.DinnerTimingFeedback)
	}
	if plan.Lifestyle.SleepStatus != domain.SleepStatusUnknown {
		t.Errorf("sleep_status = %q, want unknown", plan.Lifestyle.SleepStatus)
	}
	if plan.Lifestyle.SleepHours != nil {
		t.Errorf("sleep_hours = %v, want nil", *plan.Lifestyle.SleepHours)
	}
	if strings.Contains(plan.Meals.Lunch.Title, "(") {
		t.Errorf("no regional hint expected, got %q", plan.Meals.Lunch.Title)
	}
}

func TestBuildFallbackMealAnalysis(t *testing.T) {
	tests := []struct {
		label        domain.MealLabel
		wantCalories float64
		wantProtein  float64
	}{
		{domain.MealLabelBreakfast, 400, 18},
		{domain.MealLabelLunch, 550, 22},
		{domain.MealLabelDinner, 450, 20},
		{domain.MealLabelSnack, 200, 8},
		{"LUNCH", 550, 22},
		{domain.MealLabelUnlabeled, 350, 15},
		{"", 350, 15},
	}

	for _, tt := range tests {
		t.Run(string(tt.label), func(t *testing.T) {
			a := BuildFallbackMealAnalysis(tt.label)

			if *a.Metrics.Calories != tt.wantCalories || *a.Metrics.Protein != tt.wantProtein {
				t.Errorf("calories/protein = %v/%v, want %v/%v", *a.Metrics.Calories, *a.Metrics.Protein, tt.wantCalories, tt.wantProtein)
			}
			if *a.Metrics.Carbs != 45 || *a.Metrics.Fats != 10 || *a.Metrics.Sugar != 8 || *a.Metrics.Fiber != 6 {
				t.Errorf("unexpected base macros: %+v", a.Metrics)
			}
			if a.DishName != nil {
				t.Errorf("dish_name = %q, want nil", *a.DishName)
			}
			if a.Insights.BalanceScore != 72 || len(a.Insights.NextMealSuggestions) != 4 {
				t.Errorf("unexpected insights: %+v", a.Insights)
			}
			if a.Meta.Source != domain.SourceFallback {
				t.Errorf("meta.source = %q", a.Meta.Source)
			}
		})
	}
}
