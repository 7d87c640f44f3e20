package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/blaisecz/nutrition-coach/internal/llm"
	"github.com/blaisecz/nutrition-coach/internal/service"
	"github.com/spf13/cobra"
)

var (
	sleepWake  string
	sleepSleep string
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Compute sleep duration and status from wake and sleep times",
	RunE: func(cmd *cobra.Command, args []string) error {
		wake, err := parseClockFlag("wake", sleepWake)
		if err != nil {
			return err
		}
		bed, err := parseClockFlag("sleep", sleepSleep)
		if err != nil {
			return err
		}
		analysis := service.AnalyzeSleep(wake, bed)
		fmt.Fprintf(cmd.OutOrStdout(), "%.2f hours (%s)\n", *analysis.SleepHours, analysis.SleepStatus)
		return nil
	},
}

var (
	nextLabel       string
	nextCalories    float64
	nextProtein     float64
	nextCarbs       float64
	nextFats        float64
	nextDayCalories float64
	nextDinner      string
	nextBedtime     string
)

var nextMealCmd = &cobra.Command{
	Use:   "next-meal",
	Short: "Preview next-meal guidance for a plate and the day's calories",
	RunE: func(cmd *cobra.Command, args []string) error {
		var schedule *domain.LifestyleSchedule
		if nextDinner != "" || nextBedtime != "" {
			schedule = &domain.LifestyleSchedule{
				DinnerTime: domain.ParseClock(nextDinner),
				SleepTime:  domain.ParseClock(nextBedtime),
			}
		}

		meal := &domain.MealLog{
			MealLabel: domain.ParseMealLabel(nextLabel),
			Macros: domain.Macros{
				Calories: &nextCalories,
				Protein:  &nextProtein,
				Carbs:    &nextCarbs,
				Fats:     &nextFats,
			},
		}
		plan := service.BuildNextMealPlan(meal, domain.DayTotals{Calories: nextDayCalories}, schedule)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, plan.Headline)
		fmt.Fprintln(out, plan.Summary)
		for _, s := range plan.Suggestions {
			fmt.Fprintf(out, "- %s\n", s)
		}
		return nil
	},
}

var (
	planWake       string
	planBreakfast  string
	planLunch      string
	planSnack      string
	planDinner     string
	planSleep      string
	planPreference string
	planGoal       string
)

var planPreviewCmd = &cobra.Command{
	Use:   "plan-preview",
	Short: "Print the offline diet plan for a schedule as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &domain.DietPlanRequest{
			DietPreference: planPreference,
			PrimaryGoal:    planGoal,
			WakeTime:       optional(planWake),
			BreakfastTime:  optional(planBreakfast),
			LunchTime:      optional(planLunch),
			SnackTime:      optional(planSnack),
			DinnerTime:     optional(planDinner),
			SleepTime:      optional(planSleep),
		}
		payload := service.BuildDietPromptPayload(req, nil)
		plan := llm.BuildFallbackDietPlan(payload)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	},
}

func parseClockFlag(name, value string) (*domain.ClockTime, error) {
	clock := domain.ParseClock(value)
	if clock == nil {
		return nil, fmt.Errorf("--%s must be HH:MM (24h), got %q", name, value)
	}
	return clock, nil
}

func optional(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

func init() {
	sleepCmd.Flags().StringVar(&sleepWake, "wake", "", "Wake time HH:MM")
	sleepCmd.Flags().StringVar(&sleepSleep, "sleep", "", "Sleep time HH:MM")
	_ = sleepCmd.MarkFlagRequired("wake")
	_ = sleepCmd.MarkFlagRequired("sleep")

	nextMealCmd.Flags().StringVar(&nextLabel, "label", "", "Meal label: breakfast, lunch, snack or dinner")
	nextMealCmd.Flags().Float64Var(&nextCalories, "calories", 0, "Plate calories")
	nextMealCmd.Flags().Float64Var(&nextProtein, "protein", 0, "Plate protein in grams")
	nextMealCmd.Flags().Float64Var(&nextCarbs, "carbs", 0, "Plate carbs in grams")
	nextMealCmd.Flags().Float64Var(&nextFats, "fats", 0, "Plate fats in grams")
	nextMealCmd.Flags().Float64Var(&nextDayCalories, "day-calories", 0, "Calories logged today including this plate")
	nextMealCmd.Flags().StringVar(&nextDinner, "dinner", "", "Usual dinner time HH:MM")
	nextMealCmd.Flags().StringVar(&nextBedtime, "bedtime", "", "Usual sleep time HH:MM")

	planPreviewCmd.Flags().StringVar(&planWake, "wake", "", "Wake time HH:MM")
	planPreviewCmd.Flags().StringVar(&planBreakfast, "breakfast", "", "Breakfast time HH:MM")
	planPreviewCmd.Flags().StringVar(&planLunch, "lunch", "", "Lunch time HH:MM")
	planPreviewCmd.Flags().StringVar(&planSnack, "snack", "", "Snack time HH:MM")
	planPreviewCmd.Flags().StringVar(&planDinner, "dinner", "", "Dinner time HH:MM")
	planPreviewCmd.Flags().StringVar(&planSleep, "sleep", "", "Sleep time HH:MM")
	planPreviewCmd.Flags().StringVar(&planPreference, "diet", "", "Diet preference: vegetarian, vegan, jain or non-veg")
	planPreviewCmd.Flags().StringVar(&planGoal, "goal", "", "Primary goal")

	rootCmd.AddCommand(sleepCmd)
	rootCmd.AddCommand(nextMealCmd)
	rootCmd.AddCommand(planPreviewCmd)
}
