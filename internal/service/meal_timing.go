package service

import (
	"strings"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/domain"
)

const (
	earlyLunchMargin    = 90 * time.Minute
	longMealGap         = 5 * time.Hour
	dinnerBeforeSleepBy = 2 * time.Hour
)

const (
	earlyLunchAdvice = "You're having lunch quite early compared to your usual schedule. " +
		"Aim to keep at least 3–4 hours after breakfast so your hunger and " +
		"blood sugar patterns stay steady."
	longGapAdvice = "There is a long gap (>5 hours) between this meal and your next " +
		"scheduled one. Consider adding a light, high-fiber snack in between " +
		"to avoid energy crashes."
	lateDinnerAdvice = "Your dinner is quite close to your sleep time. Try to finish dinner " +
		"at least 2–3 hours before bed to support digestion, glucose control, " +
		"and sleep quality."
)

// AnalyzeMealTiming checks a newly logged meal against the user's schedule.
// Scheduled clock times are placed on now's calendar date in now's location.
// Without a schedule it returns empty feedback.
func AnalyzeMealTiming(now time.Time, schedule *domain.LifestyleSchedule, lastMealTime *time.Time, label domain.MealLabel) domain.TimingFeedback {
	feedback := domain.TimingFeedback{Tags: []string{}}
	if schedule == nil {
		return feedback
	}

	lunchAt := onDay(schedule.LunchTime, now)
	dinnerAt := onDay(schedule.DinnerTime, now)
	sleepAt := onDay(schedule.SleepTime, now)

	// Post-midnight bedtime relative to an evening dinner
	if sleepAt != nil && dinnerAt != nil && !sleepAt.After(*dinnerAt) {
		next := sleepAt.AddDate(0, 0, 1)
		sleepAt = &next
	}

	normalized := domain.MealLabel(strings.ToLower(string(label)))
	var advice []string

	if normalized == domain.MealLabelLunch && lunchAt != nil {
		if now.Before(lunchAt.Add(-earlyLunchMargin)) {
			advice = append(advice, earlyLunchAdvice)
			feedback.Tags = append(feedback.Tags, domain.TagEarlyLunch)
		}
	}

	if lastMealTime != nil {
		if next := earliestAfter(*lastMealTime, lunchAt, dinnerAt); next != nil {
			if next.Sub(*lastMealTime) > longMealGap {
				advice = append(advice, longGapAdvice)
				feedback.Tags = append(feedback.Tags, domain.TagLongGapSnackSuggestion)
			}
		}
	}

	if normalized == domain.MealLabelDinner && dinnerAt != nil && sleepAt != nil {
		if dinnerAt.After(sleepAt.Add(-dinnerBeforeSleepBy)) {
			advice = append(advice, lateDinnerAdvice)
			feedback.Tags = append(feedback.Tags, domain.TagLateDinner)
		}
	}

	feedback.Message = strings.Join(advice, " ")
	return feedback
}

func onDay(clock *domain.ClockTime, day time.Time) *time.Time {
	if clock == nil {
		return nil
	}
	t := clock.On(day)
	return &t
}

// earliestAfter returns the earliest candidate strictly after ref.
func earliestAfter(ref time.Time, candidates ...*time.Time) *time.Time {
	var earliest *time.Time
	for _, c := range candidates {
		if c == nil || !c.After(ref) {
			continue
		}
		if earliest == nil || c.Before(*earliest) {
			earliest = c
		}
	}
	return earliest
}
