package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/blaisecz/nutrition-coach/internal/langfuse"
	"github.com/blaisecz/nutrition-coach/internal/llm"
	"github.com/blaisecz/nutrition-coach/internal/logger"
	"github.com/blaisecz/nutrition-coach/internal/repository"
	"github.com/blaisecz/nutrition-coach/internal/storage"
	"github.com/blaisecz/nutrition-coach/pkg/pagination"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// DateLayout is the wire format of a local calendar date.
const DateLayout = "2006-01-02"

// NutritionService logs meals and aggregates a user's daily nutrition.
type NutritionService interface {
	// LogMeal runs the full pipeline for one meal photo.
	LogMeal(ctx context.Context, userID uuid.UUID, in domain.LogMealInput) (*domain.LogMealResponse, error)
	// DailySummary returns totals and meals for a local date (YYYY-MM-DD); empty means today.
	DailySummary(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySummaryResponse, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.MealLogFilter) (*domain.MealLogListResponse, error)
	// AggregateDailyNutrition sums macros over the calendar day of day, in day's location.
	AggregateDailyNutrition(ctx context.Context, userID uuid.UUID, day time.Time) (domain.DayTotals, error)
	// ListDailyMealLogs returns the day's logs in chronological order.
	ListDailyMealLogs(ctx context.Context, userID uuid.UUID, day time.Time) ([]domain.MealLog, error)
}

type nutritionService struct {
	userRepo      repository.UserRepository
	lifestyleRepo repository.LifestyleRepository
	mealLogRepo   repository.MealLogRepository
	analyzer      llm.MealImageAnalyzer
	photos        storage.PhotoStore
	tracer        langfuse.Client
	now           func() time.Time
}

// NewNutritionService creates a new NutritionService. A nil analyzer means
// every meal uses the offline estimate; a nil photo store discards photos.
func NewNutritionService(
	userRepo repository.UserRepository,
	lifestyleRepo repository.LifestyleRepository,
	mealLogRepo repository.MealLogRepository,
	analyzer llm.MealImageAnalyzer,
	photos storage.PhotoStore,
	tracer langfuse.Client,
) NutritionService {
	if photos == nil {
		photos = storage.NoopStore{}
	}
	return &nutritionService{
		userRepo:      userRepo,
		lifestyleRepo: lifestyleRepo,
		mealLogRepo:   mealLogRepo,
		analyzer:      analyzer,
		photos:        photos,
		tracer:        tracer,
		now:           time.Now,
	}
}

func (s *nutritionService) LogMeal(ctx context.Context, userID uuid.UUID, in domain.LogMealInput) (*domain.LogMealResponse, error) {
	if len(in.Image) == 0 {
		return nil, domain.ErrEmptyImage
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	label := in.MealLabel
	if label == "" {
		label = domain.MealLabelUnlabeled
	}

	ctx, span := startSpan(ctx, "NutritionService.LogMeal",
		attribute.String("user.id", userID.String()),
		attribute.String("meal.label", string(label)),
	)
	defer span.End()

	loc := user.Location()
	now := s.now().In(loc)

	schedule, err := s.lifestyleRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var lastMealTime *time.Time
	last, err := s.mealLogRepo.GetLatest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if last != nil {
		t := last.LoggedAt.In(loc)
		lastMealTime = &t
	}

	call := modelCall{model: s.analyzerModel(), start: time.Now()}
	analysis := s.analyzeMeal(ctx, in.Image, in.MimeType, label)
	call.end = time.Now()
	call.source = analysis.Meta.Source
	if call.source == domain.SourceFallback {
		call.model = FallbackModel
	}
	setObservation(span, "output", analysis)

	var imagePath *string
	key, err := s.photos.Save(ctx, userID, in.Image, in.MimeType)
	if err != nil {
		logger.Warn("meal photo not stored", "user_id", userID, "err", err)
	} else if key != "" {
		imagePath = &key
	}

	log := &domain.MealLog{
		UserID:         userID,
		MealLabel:      label,
		LoggedAt:       now,
		ImagePath:      imagePath,
		DishName:       analysis.DishName,
		Macros:         analysis.Metrics,
		AIFoodSummary:  analysis.Summary,
		AIGuidance:     analysis.Guidance,
		AnalysisSource: analysis.Meta.Source,
	}
	if err := s.mealLogRepo.Create(ctx, log); err != nil {
		return nil, err
	}

	timing := AnalyzeMealTiming(now, schedule, lastMealTime, label)

	totals, err := s.AggregateDailyNutrition(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	plan := BuildNextMealPlan(log, totals, schedule)

	resp := &domain.LogMealResponse{
		Log:            log.ToResponse(loc),
		Analysis:       analysis,
		DayTotals:      totals,
		TimingFeedback: timing,
		NextMealPlan:   plan,
	}
	resp.TraceID = recordTrace(ctx, s.tracer, langfuse.TraceInput{
		UserID: userID.String(),
		Name:   langfuse.TraceMealAnalysis,
		Input: map[string]any{
			"meal_label":     label,
			"mime_type":      in.MimeType,
			"image_bytes":    len(in.Image),
			"last_meal_time": lastMealTime,
		},
		Output: map[string]any{
			"analysis":        analysis,
			"timing_feedback": timing,
			"next_meal_plan":  plan,
		},
		Tags:       []string{"nutrition-coach", string(label)},
		Metadata:   map[string]any{"source": analysis.Meta.Source},
		Generation: call.generation(map[string]any{"meal_label": label, "mime_type": in.MimeType}, analysis),
	})

	logger.Info("meal logged",
		"user_id", userID,
		"label", label,
		"source", analysis.Meta.Source,
		"tags", timing.Tags,
	)

	return resp, nil
}

// analyzerModel names the vision model when the analyzer reports one.
func (s *nutritionService) analyzerModel() string {
	if named, ok := s.analyzer.(interface{ VisionModel() string }); ok {
		return named.VisionModel()
	}
	return ""
}

// analyzeMeal asks the AI analyzer for an estimate and falls back to the
// offline template on any failure. It never returns an error.
func (s *nutritionService) analyzeMeal(ctx context.Context, image []byte, mimeType string, label domain.MealLabel) domain.MealAnalysis {
	if s.analyzer == nil {
		return llm.BuildFallbackMealAnalysis(label)
	}

	analysis, err := s.analyzer.AnalyzeMeal(ctx, image, mimeType, label)
	if err != nil || analysis == nil {
		if !errors.Is(err, llm.ErrOpenAIUnavailable) {
			logger.Warn("meal analysis failed, using offline estimate", "label", label, "err", err)
		}
		return llm.BuildFallbackMealAnalysis(label)
	}
	return *analysis
}

func (s *nutritionService) DailySummary(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySummaryResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	loc := user.Location()
	day := s.now().In(loc)
	if date != "" {
		day, err = time.ParseInLocation(DateLayout, date, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
	}

	logs, err := s.ListDailyMealLogs(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	resp := &domain.DailySummaryResponse{
		Date:      day.Format(DateLayout),
		Timezone:  loc.String(),
		DayTotals: SumDayTotals(logs),
		Meals:     make([]domain.MealLogResponse, len(logs)),
	}
	for i := range logs {
		resp.Meals[i] = logs[i].ToResponse(loc)
	}

	return resp, nil
}

func (s *nutritionService) List(ctx context.Context, userID uuid.UUID, filter domain.MealLogFilter) (*domain.MealLogListResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	logs, err := s.mealLogRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	logs, hasMore := pagination.TrimPage(logs, filter.Limit)

	loc := user.Location()
	response := &domain.MealLogListResponse{
		Data: make([]domain.MealLogResponse, len(logs)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range logs {
		response.Data[i] = logs[i].ToResponse(loc)
	}

	if hasMore && len(logs) > 0 {
		last := logs[len(logs)-1]
		response.Pagination.NextCursor = pagination.NewCursor(last.ID, last.LoggedAt).Encode()
	}

	return response, nil
}

func (s *nutritionService) AggregateDailyNutrition(ctx context.Context, userID uuid.UUID, day time.Time) (domain.DayTotals, error) {
	logs, err := s.ListDailyMealLogs(ctx, userID, day)
	if err != nil {
		return domain.DayTotals{}, err
	}
	return SumDayTotals(logs), nil
}

func (s *nutritionService) ListDailyMealLogs(ctx context.Context, userID uuid.UUID, day time.Time) ([]domain.MealLog, error) {
	start, end := DayBounds(day)
	return s.mealLogRepo.ListInRange(ctx, userID, start, end)
}

// DayBounds returns [00:00:00, 23:59:59] of day's calendar date in day's location.
func DayBounds(day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	loc := day.Location()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), time.Date(y, m, d, 23, 59, 59, 0, loc)
}

// SumDayTotals adds up the non-null macros of logs. No logs means all zeros.
func SumDayTotals(logs []domain.MealLog) domain.DayTotals {
	var totals domain.DayTotals
	for i := range logs {
		totals.Add(logs[i].Macros)
	}
	return totals
}
