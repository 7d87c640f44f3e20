package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/config"
	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/blaisecz/nutrition-coach/internal/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seededDays = 14

// seedNamespace derives stable meal log IDs so reseeding does not duplicate rows.
var seedNamespace = uuid.MustParse("6f1c2d4e-8a9b-4c3d-9e0f-1a2b3c4d5e6f")

// Users are the sample accounts created by Run.
var Users = []domain.User{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Email: "asha@example.com", FullName: "Asha Rao", Timezone: "Asia/Kolkata"},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Email: "liam@example.com", FullName: "Liam Byrne", Timezone: "Europe/Dublin"},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Email: "maya@example.com", FullName: "Maya Chen", Timezone: "America/New_York"},
}

type sampleMeal struct {
	label    domain.MealLabel
	dish     string
	calories float64
	protein  float64
	carbs    float64
	fats     float64
	sugar    float64
	fiber    float64
}

var sampleMeals = []sampleMeal{
	{domain.MealLabelBreakfast, "Poha with peanuts", 380, 9, 62, 11, 4, 4},
	{domain.MealLabelBreakfast, "Idli with sambar", 340, 12, 58, 6, 3, 6},
	{domain.MealLabelLunch, "Rajma chawal", 560, 19, 88, 12, 5, 11},
	{domain.MealLabelLunch, "Paneer tikka wrap", 520, 28, 48, 22, 6, 5},
	{domain.MealLabelSnack, "Masala chai and biscuits", 210, 4, 32, 7, 16, 1},
	{domain.MealLabelSnack, "Sprouts chaat", 180, 11, 26, 3, 4, 7},
	{domain.MealLabelDinner, "Moong dal khichdi", 450, 17, 70, 9, 3, 8},
	{domain.MealLabelDinner, "Grilled chicken with salad", 480, 42, 18, 24, 5, 6},
}

// Run seeds the database with sample users, schedules and meal logs. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := config.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	for i := range Users {
		user := Users[i]
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
		if err := seedSchedule(db, user, i); err != nil {
			return err
		}
		// Per-user source keeps reseeded values identical
		rng := rand.New(rand.NewSource(int64(i + 1)))
		if err := seedMealLogsForUser(db, user, rng); err != nil {
			return err
		}
	}

	logger.Info("seed completed", "users", len(Users), "days", seededDays)
	return nil
}

func seedSchedule(db *gorm.DB, user domain.User, offset int) error {
	clock := func(hour, minute int) *domain.ClockTime {
		c := domain.NewClock(hour, minute)
		return &c
	}
	schedule := domain.LifestyleSchedule{
		UserID:        user.ID,
		WakeTime:      clock(6+offset, 30),
		BreakfastTime: clock(8+offset, 0),
		LunchTime:     clock(13, 0),
		SnackTime:     clock(17, 0),
		DinnerTime:    clock(20+offset, 0),
		SleepTime:     clock(23, offset*15),
	}
	if err := db.Where("user_id = ?", user.ID).FirstOrCreate(&schedule).Error; err != nil {
		return fmt.Errorf("failed to create schedule for %s: %w", user.ID, err)
	}
	return nil
}

func seedMealLogsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	loc := user.Location()
	today := time.Now().In(loc)
	hours := map[domain.MealLabel]int{
		domain.MealLabelBreakfast: 8,
		domain.MealLabelLunch:     13,
		domain.MealLabelSnack:     17,
		domain.MealLabelDinner:    20,
	}

	for day := 1; day <= seededDays; day++ {
		date := today.AddDate(0, 0, -day)
		for _, label := range []domain.MealLabel{domain.MealLabelBreakfast, domain.MealLabelLunch, domain.MealLabelSnack, domain.MealLabelDinner} {
			meal := pickMeal(label, rng)
			loggedAt := time.Date(date.Year(), date.Month(), date.Day(), hours[label], rng.Intn(45), 0, 0, loc)
			id := uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("%s/%s/%s", user.ID, date.Format("2006-01-02"), label)))

			dish := meal.dish
			log := domain.MealLog{
				ID:        id,
				UserID:    user.ID,
				MealLabel: label,
				LoggedAt:  loggedAt.UTC(),
				DishName:  &dish,
				Macros: domain.Macros{
					Calories: scaled(meal.calories, rng),
					Protein:  scaled(meal.protein, rng),
					Carbs:    scaled(meal.carbs, rng),
					Fats:     scaled(meal.fats, rng),
					Sugar:    scaled(meal.sugar, rng),
					Fiber:    scaled(meal.fiber, rng),
				},
				AIFoodSummary:  "Sample meal: " + meal.dish + ".",
				AIGuidance:     "Seeded data for local testing.",
				AnalysisSource: domain.SourceFallback,
			}
			if err := db.Where("id = ?", id).FirstOrCreate(&log).Error; err != nil {
				return fmt.Errorf("failed to create meal log: %w", err)
			}
		}
	}
	return nil
}

func pickMeal(label domain.MealLabel, rng *rand.Rand) sampleMeal {
	var options []sampleMeal
	for _, m := range sampleMeals {
		if m.label == label {
			options = append(options, m)
		}
	}
	return options[rng.Intn(len(options))]
}

// scaled varies a portion by up to ±15% and rounds to one decimal.
func scaled(value float64, rng *rand.Rand) *float64 {
	factor := 0.85 + rng.Float64()*0.3
	v := float64(int(value*factor*10+0.5)) / 10
	return &v
}
