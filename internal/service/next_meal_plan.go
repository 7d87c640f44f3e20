package service

import (
	"strings"

	"github.com/blaisecz/nutrition-coach/internal/domain"
)

const (
	// Macro balance thresholds, as percentage of meal calories
	LowProteinPctBelow = 20.0
	HighCarbsPctAbove  = 55.0
	HighFatsPctAbove   = 35.0

	// Reference band for daily calories; only used to phrase guidance
	DailyCaloriesLowerRef = 1600.0
	DailyCaloriesUpperRef = 2300.0
	lowDayFraction        = 0.6
)

// MacroFlag marks an imbalance in a single meal.
type MacroFlag string

const (
	FlagLowProtein MacroFlag = "low_protein"
	FlagHighCarbs  MacroFlag = "high_carbs"
	FlagHighFats   MacroFlag = "high_fats"
)

// DayState is a coarse classification of cumulative daily calories.
type DayState string

const (
	DayStateLow      DayState = "low"
	DayStateModerate DayState = "moderate"
	DayStateHigh     DayState = "high"
)

// Next meal slots
const (
	TargetBreakfast    = "breakfast"
	TargetLunch        = "lunch"
	TargetEveningSnack = "evening snack"
	TargetDinner       = "dinner"
	TargetNextMeal     = "next meal"
)

// MacroBalance is the calorie split of one meal.
type MacroBalance struct {
	ProteinPct float64
	CarbsPct   float64
	FatsPct    float64
	Flags      []MacroFlag
}

func (b MacroBalance) Has(flag MacroFlag) bool {
	for _, f := range b.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// ComputeMacroBalance splits a meal's calories across protein, carbs and fats.
// The denominator is the larger of logged calories and macro calories, never below 1.
func ComputeMacroBalance(m domain.Macros) MacroBalance {
	proteinCals := valueOf(m.Protein) * 4
	carbCals := valueOf(m.Carbs) * 4
	fatCals := valueOf(m.Fats) * 9
	total := max(valueOf(m.Calories), proteinCals+carbCals+fatCals, 1.0)

	b := MacroBalance{
		ProteinPct: proteinCals / total * 100,
		CarbsPct:   carbCals / total * 100,
		FatsPct:    fatCals / total * 100,
		Flags:      []MacroFlag{},
	}
	if b.ProteinPct < LowProteinPctBelow {
		b.Flags = append(b.Flags, FlagLowProtein)
	}
	if b.CarbsPct > HighCarbsPctAbove {
		b.Flags = append(b.Flags, FlagHighCarbs)
	}
	if b.FatsPct > HighFatsPctAbove {
		b.Flags = append(b.Flags, FlagHighFats)
	}
	return b
}

// ClassifyDay places the day's calories against the reference band.
func ClassifyDay(calories float64) DayState {
	switch {
	case calories < DailyCaloriesLowerRef*lowDayFraction:
		return DayStateLow
	case calories > DailyCaloriesUpperRef:
		return DayStateHigh
	default:
		return DayStateModerate
	}
}

// NextTargetMeal rotates breakfast → lunch → evening snack → dinner → breakfast.
func NextTargetMeal(label domain.MealLabel) string {
	switch domain.MealLabel(strings.ToLower(string(label))) {
	case domain.MealLabelBreakfast:
		return TargetLunch
	case domain.MealLabelLunch:
		return TargetEveningSnack
	case domain.MealLabelSnack:
		return TargetDinner
	case domain.MealLabelDinner:
		return TargetBreakfast
	default:
		return TargetNextMeal
	}
}

const (
	lowProteinNote    = "This plate was on the lighter side for protein. Anchor your next plate around a solid protein source."
	okProteinNote     = "Protein was fairly reasonable here. You can keep protein steady and tune carbs/fats in the next plate."
	highCarbsNote     = "Carbs were on the higher side, so keep the next plate grain‑light and vegetable‑heavy."
	highFatsNote      = "Fats were relatively higher, so prefer grilled/steamed options instead of deep‑fried items next."
	firstMealNote     = "This looks like your first logged meal of the day; build the rest of the day around steady protein and vegetables."
	lowDayNote        = "Overall, your calories today are on the lower side — a slightly fuller but still balanced next plate is okay."
	highDayNote       = "You are already quite high on total calories today; make the next plate lighter and avoid extra sugary drinks or desserts."
	moderateDayNote   = "Your overall day looks moderate so far; focus on quality foods and portion control rather than strict restriction."
	lateDinnerHint    = " Try to keep the last substantial plate at least 2–3 hours before your usual sleep time."
	lateDinnerHourGap = 2
)

// BuildNextMealPlan derives rule-based guidance for the next meal from the meal just
// logged and the day's running totals.
func BuildNextMealPlan(log *domain.MealLog, dayTotals domain.DayTotals, schedule *domain.LifestyleSchedule) domain.NextMealPlan {
	balance := ComputeMacroBalance(log.Macros)
	dayState := ClassifyDay(dayTotals.Calories)
	target := NextTargetMeal(log.MealLabel)

	var parts []string
	if balance.Has(FlagLowProtein) {
		parts = append(parts, lowProteinNote)
	} else {
		parts = append(parts, okProteinNote)
	}
	if balance.Has(FlagHighCarbs) {
		parts = append(parts, highCarbsNote)
	}
	if balance.Has(FlagHighFats) {
		parts = append(parts, highFatsNote)
	}

	switch {
	case dayTotals.Calories == 0:
		parts = append(parts, firstMealNote)
	case dayState == DayStateLow:
		parts = append(parts, lowDayNote)
	case dayState == DayStateHigh:
		parts = append(parts, highDayNote)
	default:
		parts = append(parts, moderateDayNote)
	}

	mealWord := strings.ToLower(string(log.MealLabel))
	if mealWord == "" || log.MealLabel == domain.MealLabelUnlabeled {
		mealWord = "meal"
	}
	headline := "Based on this " + mealWord + " and your day so far, aim for your next " +
		target + " to be protein‑anchored, veggie‑heavy and portion‑aware."
	if dinnerCloseToSleepByHour(schedule) {
		headline += lateDinnerHint
	}

	summary := strings.Join(parts, " ")
	if summary == "" {
		summary = headline
	}

	return domain.NextMealPlan{
		Summary:     summary,
		Headline:    headline,
		Suggestions: mealSuggestions(target, balance),
	}
}

// dinnerCloseToSleepByHour compares whole hours only. This is coarser than the
// minute-precision, midnight-aware check in AnalyzeMealTiming.
func dinnerCloseToSleepByHour(schedule *domain.LifestyleSchedule) bool {
	if schedule == nil || schedule.DinnerTime == nil || schedule.SleepTime == nil {
		return false
	}
	return schedule.DinnerTime.Hour >= schedule.SleepTime.Hour-lateDinnerHourGap
}

func mealSuggestions(target string, balance MacroBalance) []string {
	switch target {
	case TargetBreakfast:
		items := []string{
			"Upma/poha with lots of vegetables (1 medium bowl) + a side of curd/Greek yogurt (1/2 cup).",
			"2–3 idlis with sambar + coconut chutney, or 2 stuffed parathas with curd and salad.",
		}
		if balance.Has(FlagLowProtein) {
			items = append(items, "Add boiled eggs (2) OR a bowl of sprouts/chana along with your usual breakfast.")
		}
		return items
	case TargetLunch, TargetEveningSnack:
		items := []string{
			"2 phulka/chapati + 1 bowl dal/rajma/chole + 1 big bowl mixed salad (cucumber, carrot, tomato).",
			"1 cup rice + grilled/sauteed paneer/tofu/chicken (palm‑size) + 1–2 bowls vegetables.",
		}
		if balance.Has(FlagLowProtein) {
			items = append(items, "Keep grain portion to 1 roti or 1/2 cup rice and make room for extra dal/curd or an egg/chicken side.")
		}
		if balance.Has(FlagHighCarbs) {
			items = append(items, "Switch to mostly sabzi + dal with just 1 small roti; avoid extra rice, sweets and sugary drinks.")
		}
		return items
	case TargetDinner:
		items := []string{
			"Moong dal khichdi (1 medium bowl) + salad + small bowl curd.",
			"Grilled/sauteed paneer/tofu/chicken (palm‑size) + 1–2 bowls vegetables + 1 small phulka or 1/2 cup rice.",
		}
		if balance.Has(FlagLowProtein) {
			items = append(items, "If dinners are usually light on protein, add a bowl of dal or curd or an egg side instead of extra roti/rice.")
		}
		if balance.Has(FlagHighCarbs) {
			items = append(items, "Keep grains very light at dinner (1 small phulka or 1/2 cup rice) and fill the plate with sabzi and protein.")
		}
		if balance.Has(FlagHighFats) {
			items = append(items, "Prefer home‑style gravies with less oil, tandoori/roasted options, and avoid deep‑fried starters.")
		}
		return items
	default:
		return []string{
			"Pick a plate where half the space is colourful vegetables, one‑quarter lean protein and one‑quarter whole grains.",
			"Keep a glass of water, buttermilk or unsweetened tea with the meal instead of juice or soda.",
		}
	}
}

func valueOf(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
