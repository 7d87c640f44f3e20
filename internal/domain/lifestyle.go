package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LifestyleSchedule stores a user's recurring daily timings. Times are not checked
// for mutual ordering; sleep may well be "earlier" than wake on the clock.
type LifestyleSchedule struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	WakeTime      *ClockTime `gorm:"type:varchar(5)" json:"wake_time"`
	BreakfastTime *ClockTime `gorm:"type:varchar(5)" json:"breakfast_time"`
	LunchTime     *ClockTime `gorm:"type:varchar(5)" json:"lunch_time"`
	SnackTime     *ClockTime `gorm:"type:varchar(5)" json:"snack_time"`
	DinnerTime    *ClockTime `gorm:"type:varchar(5)" json:"dinner_time"`
	SleepTime     *ClockTime `gorm:"type:varchar(5)" json:"sleep_time"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LifestyleSchedule) TableName() string {
	return "user_lifestyles"
}

func (l *LifestyleSchedule) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Timing renders the schedule as HH:MM strings, the shape sent to the diet planner.
func (l *LifestyleSchedule) Timing() LifestyleTiming {
	if l == nil {
		return LifestyleTiming{}
	}
	return LifestyleTiming{
		WakeTime:      FormatClock(l.WakeTime),
		BreakfastTime: FormatClock(l.BreakfastTime),
		LunchTime:     FormatClock(l.LunchTime),
		SnackTime:     FormatClock(l.SnackTime),
		DinnerTime:    FormatClock(l.DinnerTime),
		SleepTime:     FormatClock(l.SleepTime),
	}
}

// LifestyleTiming is the string form of a schedule.
// @Description Lifestyle timings in HH:MM (24h) format; absent values are null.
type LifestyleTiming struct {
	WakeTime      *string `json:"wake_time" example:"06:30"`
	BreakfastTime *string `json:"breakfast_time" example:"08:00"`
	LunchTime     *string `json:"lunch_time" example:"13:00"`
	SnackTime     *string `json:"snack_time" example:"17:00"`
	DinnerTime    *string `json:"dinner_time" example:"20:00"`
	SleepTime     *string `json:"sleep_time" example:"23:00"`
}

// UpdateLifestyleRequest replaces the stored schedule. Omitted fields are cleared.
// @Description Lifestyle timing update; each value must be HH:MM (24h) or omitted.
type UpdateLifestyleRequest struct {
	WakeTime      *string `json:"wake_time,omitempty" validate:"omitempty,clock" example:"06:30"`
	BreakfastTime *string `json:"breakfast_time,omitempty" validate:"omitempty,clock" example:"08:00"`
	LunchTime     *string `json:"lunch_time,omitempty" validate:"omitempty,clock" example:"13:00"`
	SnackTime     *string `json:"snack_time,omitempty" validate:"omitempty,clock" example:"17:00"`
	DinnerTime    *string `json:"dinner_time,omitempty" validate:"omitempty,clock" example:"20:00"`
	SleepTime     *string `json:"sleep_time,omitempty" validate:"omitempty,clock" example:"23:00"`
}

// LifestyleResponse is the response body for lifestyle endpoints.
// @Description Stored lifestyle timings with the derived sleep analysis.
type LifestyleResponse struct {
	UserID uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	LifestyleTiming
	SleepAnalysis SleepAnalysis `json:"sleep_analysis"`
	UpdatedAt     *time.Time    `json:"updated_at,omitempty"`
}

// SleepStatus is the qualitative classification of a sleep duration.
type SleepStatus string

const (
	SleepStatusUnknown      SleepStatus = "unknown"
	SleepStatusInsufficient SleepStatus = "insufficient"
	SleepStatusOptimal      SleepStatus = "optimal"
	SleepStatusBorderline   SleepStatus = "borderline"
	SleepStatusExcessive    SleepStatus = "excessive"
)

// SleepAnalysis is derived from wake and sleep times.
// @Description Sleep duration and status derived from the lifestyle schedule.
type SleepAnalysis struct {
	SleepHours  *float64    `json:"sleep_hours" example:"7.5"`
	SleepStatus SleepStatus `json:"sleep_status" example:"optimal" enums:"unknown,insufficient,optimal,borderline,excessive"`
}
