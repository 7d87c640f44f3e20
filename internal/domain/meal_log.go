package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealLabel categorises a logged meal.
// @Description Meal label: breakfast, lunch, snack, dinner or unlabeled.
type MealLabel string

const (
	MealLabelBreakfast MealLabel = "breakfast"
	MealLabelLunch     MealLabel = "lunch"
	MealLabelSnack     MealLabel = "snack"
	MealLabelDinner    MealLabel = "dinner"
	MealLabelUnlabeled MealLabel = "unlabeled"
)

// ParseMealLabel normalises free text into a MealLabel; unknown values become unlabeled.
func ParseMealLabel(value string) MealLabel {
	switch label := MealLabel(strings.ToLower(strings.TrimSpace(value))); label {
	case MealLabelBreakfast, MealLabelLunch, MealLabelSnack, MealLabelDinner:
		return label
	default:
		return MealLabelUnlabeled
	}
}

// Macros holds per-meal nutrition values. Each field is independently nullable.
// @Description Calories (kcal) and macros in grams; null when unknown.
type Macros struct {
	Calories *float64 `json:"calories" example:"450"`
	Protein  *float64 `json:"protein" example:"20"`
	Carbs    *float64 `json:"carbs" example:"45"`
	Fats     *float64 `json:"fats" example:"10"`
	Sugar    *float64 `json:"sugar" example:"8"`
	Fiber    *float64 `json:"fiber" example:"6"`
}

// MealLog is one logged meal occurrence.
type MealLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_meal_logs_user_logged" json:"user_id"`
	MealLabel      MealLabel `gorm:"type:varchar(16);not null;default:'unlabeled'" json:"meal_label"`
	LoggedAt       time.Time `gorm:"not null;index:idx_meal_logs_user_logged" json:"logged_at"`
	ImagePath      *string   `gorm:"type:varchar(512)" json:"image_path,omitempty"`
	DishName       *string   `gorm:"type:varchar(255)" json:"dish_name,omitempty"`
	Macros         `gorm:"embedded"`
	AIFoodSummary  string    `gorm:"type:text" json:"ai_food_summary"`
	AIGuidance     string    `gorm:"type:text" json:"ai_guidance"`
	AnalysisSource string    `gorm:"type:varchar(32)" json:"analysis_source"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MealLog) TableName() string {
	return "meal_logs"
}

func (m *MealLog) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MealLogResponse is the response body for a logged meal.
// @Description Logged meal with nutrition values, times shown in the user's timezone.
type MealLogResponse struct {
	ID             uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID         uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	MealLabel      MealLabel `json:"meal_label" example:"lunch"`
	LoggedAt       time.Time `json:"logged_at" example:"2024-01-16T13:05:00+05:30"`
	ImagePath      *string   `json:"image_path,omitempty"`
	DishName       *string   `json:"dish_name,omitempty" example:"Rajma chawal"`
	Macros         Macros    `json:"macros"`
	AIFoodSummary  string    `json:"ai_food_summary"`
	AIGuidance     string    `json:"ai_guidance"`
	AnalysisSource string    `json:"analysis_source" example:"openai"`
}

// ToResponse renders the log with LoggedAt converted to loc.
func (m *MealLog) ToResponse(loc *time.Location) MealLogResponse {
	if loc == nil {
		loc = time.UTC
	}
	return MealLogResponse{
		ID:             m.ID,
		UserID:         m.UserID,
		MealLabel:      m.MealLabel,
		LoggedAt:       m.LoggedAt.In(loc),
		ImagePath:      m.ImagePath,
		DishName:       m.DishName,
		Macros:         m.Macros,
		AIFoodSummary:  m.AIFoodSummary,
		AIGuidance:     m.AIGuidance,
		AnalysisSource: m.AnalysisSource,
	}
}

// MealLogFilter contains filter parameters for listing meal logs
type MealLogFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// MealLogListResponse is the response body for listing meal logs.
// @Description Paginated list of meal logs, newest first.
type MealLogListResponse struct {
	Data       []MealLogResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// LogMealInput carries an uploaded meal photo into the logging pipeline.
type LogMealInput struct {
	MealLabel MealLabel
	Image     []byte
	MimeType  string
}
