package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DietPlanRequest is the request body for generating a diet plan.
// Timing fields override the stored lifestyle schedule when they hold a valid HH:MM value.
// @Description Body, medical and preference data for a diet plan request.
type DietPlanRequest struct {
	Age           *int     `json:"age,omitempty" validate:"omitempty,min=1,max=120" example:"29"`
	Gender        string   `json:"gender,omitempty" validate:"omitempty,max=32" example:"female"`
	HeightCM      *float64 `json:"height_cm,omitempty" validate:"omitempty,gt=0,lt=300" example:"162"`
	WeightKG      *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0,lt=500" example:"58"`
	ActivityLevel string   `json:"activity_level,omitempty" validate:"omitempty,max=64" example:"moderate"`
	PrimaryGoal   string   `json:"primary_goal,omitempty" validate:"omitempty,max=128" example:"fat loss"`
	BMI           *float64 `json:"bmi,omitempty" validate:"omitempty,gt=0,lt=100" example:"22.1"`

	MedicalIssues   string `json:"medical_issues,omitempty" validate:"omitempty,max=1000"`
	AdditionalNotes string `json:"additional_notes,omitempty" validate:"omitempty,max=1000"`

	DietPreference  string `json:"diet_preference,omitempty" validate:"omitempty,oneof=vegetarian vegan jain non-veg" example:"vegetarian"`
	RegionalCuisine string `json:"regional_cuisine,omitempty" validate:"omitempty,max=64" example:"South Indian"`
	FoodLikes       string `json:"food_likes,omitempty" validate:"omitempty,max=500"`
	FoodDislikes    string `json:"food_dislikes,omitempty" validate:"omitempty,max=500"`

	WakeTime      *string `json:"wake_time,omitempty" example:"06:30"`
	BreakfastTime *string `json:"breakfast_time,omitempty" example:"08:00"`
	LunchTime     *string `json:"lunch_time,omitempty" example:"13:00"`
	SnackTime     *string `json:"snack_time,omitempty" example:"17:00"`
	DinnerTime    *string `json:"dinner_time,omitempty" example:"20:00"`
	SleepTime     *string `json:"sleep_time,omitempty" example:"23:00"`
}

// BodyProfile, MedicalProfile and DietPreferences are the prompt payload sections.
type BodyProfile struct {
	Age           *int     `json:"age"`
	Gender        string   `json:"gender"`
	HeightCM      *float64 `json:"height_cm"`
	WeightKG      *float64 `json:"weight_kg"`
	ActivityLevel string   `json:"activity_level"`
	PrimaryGoal   string   `json:"primary_fitness_goal"`
	BMI           *float64 `json:"bmi"`
}

type MedicalProfile struct {
	MedicalIssues   string `json:"medical_issues"`
	AdditionalNotes string `json:"additional_notes"`
}

type DietPreferences struct {
	DietPreference  string `json:"diet_preference"`
	RegionalCuisine string `json:"regional_cuisine"`
	FoodLikes       string `json:"food_likes"`
	FoodDislikes    string `json:"food_dislikes"`
}

// DietPromptPayload is the structured context handed to the diet plan generator.
// @Description Combined user context sent to the diet plan generator.
type DietPromptPayload struct {
	BodyProfile     BodyProfile     `json:"body_profile"`
	MedicalProfile  MedicalProfile  `json:"medical_profile"`
	DietPreferences DietPreferences `json:"diet_preferences"`
	LifestyleTiming LifestyleTiming `json:"lifestyle_timing"`
	SleepAnalysis   SleepAnalysis   `json:"sleep_analysis"`
}

// MealBlock is one meal slot of a diet plan.
type MealBlock struct {
	Title         string   `json:"title" example:"Breakfast"`
	ScheduledTime *string  `json:"scheduled_time" example:"08:00"`
	Summary       string   `json:"summary"`
	Items         []string `json:"items"`
}

type DietMeals struct {
	EarlyMorning    MealBlock `json:"early_morning"`
	Breakfast       MealBlock `json:"breakfast"`
	MidMorningSnack MealBlock `json:"mid_morning_snack"`
	Lunch           MealBlock `json:"lunch"`
	EveningSnack    MealBlock `json:"evening_snack"`
	Dinner          MealBlock `json:"dinner"`
}

type HydrationPlan struct {
	Summary           string   `json:"summary"`
	TimingSuggestions []string `json:"timing_suggestions"`
}

type LifestyleAdvice struct {
	SleepHours               *float64    `json:"sleep_hours"`
	SleepStatus              SleepStatus `json:"sleep_status"`
	DinnerTimingFeedback     string      `json:"dinner_timing_feedback"`
	RecommendedWorkoutWindow string      `json:"recommended_workout_window"`
}

// DietPlan is the structured diet plan returned by the generator or the local fallback.
// @Description Structured diet plan with meal blocks, hydration and lifestyle advice.
type DietPlan struct {
	Meta      AnalysisMeta    `json:"meta"`
	Meals     DietMeals       `json:"meals"`
	Hydration HydrationPlan   `json:"hydration"`
	Lifestyle LifestyleAdvice `json:"lifestyle"`
}

// DietRequest stores the inputs and output of one diet plan generation.
type DietRequest struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	PromptPayload     datatypes.JSON `gorm:"not null" json:"prompt_payload"`
	ResponsePayload   datatypes.JSON `json:"response_payload"`
	AIModel           string         `gorm:"type:varchar(128)" json:"ai_model"`
	Source            string         `gorm:"type:varchar(32)" json:"source"`
	ResponseLatencyMS *int           `json:"response_latency_ms,omitempty"`
	TraceID           string         `gorm:"type:varchar(64)" json:"trace_id,omitempty"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DietRequest) TableName() string {
	return "diet_requests"
}

func (d *DietRequest) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DietPlanResponse is the response body for diet plan endpoints.
// @Description Generated diet plan with the payload it was generated from.
type DietPlanResponse struct {
	ID                uuid.UUID         `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID            uuid.UUID         `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	CreatedAt         time.Time         `json:"created_at"`
	AIModel           string            `json:"ai_model" example:"gpt-4o-mini"`
	ResponseLatencyMS *int              `json:"response_latency_ms,omitempty" example:"1830"`
	Payload           DietPromptPayload `json:"prompt_payload"`
	Plan              DietPlan          `json:"plan"`
	// Trace ID for feedback (only present when Langfuse is enabled)
	TraceID string `json:"trace_id,omitempty"`
}
