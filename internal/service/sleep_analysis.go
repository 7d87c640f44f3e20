package service

import (
	"math"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/domain"
)

const (
	// Sleep duration thresholds in hours
	InsufficientSleepBelow = 7.0
	OptimalSleepUpTo       = 9.0
	ExcessiveSleepAbove    = 9.5
)

// sleepReferenceDay anchors clock arithmetic; only the difference matters.
var sleepReferenceDay = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// AnalyzeSleep computes sleep duration from bedtime to wake time and classifies it.
// A wake time at or before the sleep time on the clock is taken to be on the next day.
func AnalyzeSleep(wakeTime, sleepTime *domain.ClockTime) domain.SleepAnalysis {
	if wakeTime == nil || sleepTime == nil {
		return domain.SleepAnalysis{SleepStatus: domain.SleepStatusUnknown}
	}

	sleepAt := sleepTime.On(sleepReferenceDay)
	wakeAt := wakeTime.On(sleepReferenceDay)
	if !wakeAt.After(sleepAt) {
		wakeAt = wakeAt.AddDate(0, 0, 1)
	}

	hours := roundTo(wakeAt.Sub(sleepAt).Hours(), 2)
	return domain.SleepAnalysis{
		SleepHours:  &hours,
		SleepStatus: classifySleep(hours),
	}
}

func classifySleep(hours float64) domain.SleepStatus {
	switch {
	case hours < InsufficientSleepBelow:
		return domain.SleepStatusInsufficient
	case hours <= OptimalSleepUpTo:
		return domain.SleepStatusOptimal
	case hours > ExcessiveSleepAbove:
		return domain.SleepStatusExcessive
	default:
		return domain.SleepStatusBorderline
	}
}

func roundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}
