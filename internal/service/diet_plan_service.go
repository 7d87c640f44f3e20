package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/blaisecz/nutrition-coach/internal/langfuse"
	"github.com/blaisecz/nutrition-coach/internal/llm"
	"github.com/blaisecz/nutrition-coach/internal/logger"
	"github.com/blaisecz/nutrition-coach/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/datatypes"
)

// FallbackModel is recorded as the model name when the local template produced the plan.
const FallbackModel = "local-fallback"

// DietPlanService generates and retrieves diet plans.
type DietPlanService interface {
	Generate(ctx context.Context, userID uuid.UUID, req *domain.DietPlanRequest) (*domain.DietPlanResponse, error)
	Get(ctx context.Context, userID, planID uuid.UUID) (*domain.DietPlanResponse, error)
}

type dietPlanService struct {
	userRepo      repository.UserRepository
	lifestyleRepo repository.LifestyleRepository
	dietRepo      repository.DietRequestRepository
	generator     llm.DietPlanGenerator
	tracer        langfuse.Client
}

// NewDietPlanService creates a new DietPlanService. A nil generator means
// every plan comes from the local template.
func NewDietPlanService(
	userRepo repository.UserRepository,
	lifestyleRepo repository.LifestyleRepository,
	dietRepo repository.DietRequestRepository,
	generator llm.DietPlanGenerator,
	tracer langfuse.Client,
) DietPlanService {
	return &dietPlanService{
		userRepo:      userRepo,
		lifestyleRepo: lifestyleRepo,
		dietRepo:      dietRepo,
		generator:     generator,
		tracer:        tracer,
	}
}

func (s *dietPlanService) Generate(ctx context.Context, userID uuid.UUID, req *domain.DietPlanRequest) (*domain.DietPlanResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	ctx, span := startSpan(ctx, "DietPlanService.Generate",
		attribute.String("user.id", userID.String()),
		attribute.String("diet.preference", req.DietPreference),
	)
	defer span.End()

	schedule, err := s.lifestyleRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload := BuildDietPromptPayload(req, schedule)
	setObservation(span, "input", payload)

	call := modelCall{start: time.Now()}
	plan, model := s.generatePlan(ctx, payload)
	call.end = time.Now()
	call.model, call.source = model, plan.Meta.Source
	latencyMS := int(call.end.Sub(call.start).Milliseconds())
	setObservation(span, "output", plan)

	promptJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}

	record := &domain.DietRequest{
		UserID:            userID,
		PromptPayload:     datatypes.JSON(promptJSON),
		ResponsePayload:   datatypes.JSON(planJSON),
		AIModel:           model,
		Source:            plan.Meta.Source,
		ResponseLatencyMS: &latencyMS,
	}
	record.TraceID = recordTrace(ctx, s.tracer, langfuse.TraceInput{
		UserID:     userID.String(),
		Name:       langfuse.TraceDietPlan,
		Input:      payload,
		Output:     plan,
		Tags:       []string{"nutrition-coach", "diet-plan"},
		Metadata:   map[string]any{"model": model, "source": plan.Meta.Source, "latency_ms": latencyMS},
		Generation: call.generation(payload, plan),
	})

	if err := s.dietRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	logger.Info("diet plan generated",
		"user_id", userID,
		"source", plan.Meta.Source,
		"model", model,
		"latency_ms", latencyMS,
	)

	return &domain.DietPlanResponse{
		ID:                record.ID,
		UserID:            userID,
		CreatedAt:         record.CreatedAt,
		AIModel:           model,
		ResponseLatencyMS: &latencyMS,
		Payload:           payload,
		Plan:              plan,
		TraceID:           record.TraceID,
	}, nil
}

// generatePlan asks the generator for a plan and falls back to the local
// template on any failure. It never returns an error.
func (s *dietPlanService) generatePlan(ctx context.Context, payload domain.DietPromptPayload) (domain.DietPlan, string) {
	if s.generator == nil {
		return llm.BuildFallbackDietPlan(payload), FallbackModel
	}

	plan, err := s.generator.GeneratePlan(ctx, payload)
	if err != nil || plan == nil {
		if !errors.Is(err, llm.ErrOpenAIUnavailable) {
			logger.Warn("diet plan generation failed, using local plan", "err", err)
		}
		return llm.BuildFallbackDietPlan(payload), FallbackModel
	}
	return *plan, s.generator.Model()
}

func (s *dietPlanService) Get(ctx context.Context, userID, planID uuid.UUID) (*domain.DietPlanResponse, error) {
	record, err := s.dietRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	// Plans of other users are reported as missing
	if record.UserID != userID {
		return nil, domain.ErrNotFound
	}

	resp := &domain.DietPlanResponse{
		ID:                record.ID,
		UserID:            record.UserID,
		CreatedAt:         record.CreatedAt,
		AIModel:           record.AIModel,
		ResponseLatencyMS: record.ResponseLatencyMS,
		TraceID:           record.TraceID,
	}
	if err := json.Unmarshal(record.PromptPayload, &resp.Payload); err != nil {
		return nil, err
	}
	if len(record.ResponsePayload) > 0 {
		if err := json.Unmarshal(record.ResponsePayload, &resp.Plan); err != nil {
			return nil, err
		}
	}

	return resp, nil
}

// BuildDietPromptPayload merges request timing overrides into the stored schedule,
// analyses sleep on the merged times and assembles the generator payload.
// Overrides that are not valid HH:MM values are ignored.
func BuildDietPromptPayload(req *domain.DietPlanRequest, schedule *domain.LifestyleSchedule) domain.DietPromptPayload {
	merged := domain.LifestyleSchedule{}
	if schedule != nil {
		merged = *schedule
	}
	override := func(dst **domain.ClockTime, value *string) {
		if clock := domain.ParseClockPtr(value); clock != nil {
			*dst = clock
		}
	}
	override(&merged.WakeTime, req.WakeTime)
	override(&merged.BreakfastTime, req.BreakfastTime)
	override(&merged.LunchTime, req.LunchTime)
	override(&merged.SnackTime, req.SnackTime)
	override(&merged.DinnerTime, req.DinnerTime)
	override(&merged.SleepTime, req.SleepTime)

	return domain.DietPromptPayload{
		BodyProfile: domain.BodyProfile{
			Age:           req.Age,
			Gender:        req.Gender,
			HeightCM:      req.HeightCM,
			WeightKG:      req.WeightKG,
			ActivityLevel: req.ActivityLevel,
			PrimaryGoal:   req.PrimaryGoal,
			BMI:           bmiOf(req),
		},
		MedicalProfile: domain.MedicalProfile{
			MedicalIssues:   req.MedicalIssues,
			AdditionalNotes: req.AdditionalNotes,
		},
		DietPreferences: domain.DietPreferences{
			DietPreference:  req.DietPreference,
			RegionalCuisine: req.RegionalCuisine,
			FoodLikes:       req.FoodLikes,
			FoodDislikes:    req.FoodDislikes,
		},
		LifestyleTiming: merged.Timing(),
		SleepAnalysis:   AnalyzeSleep(merged.WakeTime, merged.SleepTime),
	}
}

// bmiOf returns the supplied BMI, or derives it from height and weight.
func bmiOf(req *domain.DietPlanRequest) *float64 {
	if req.BMI != nil {
		return req.BMI
	}
	if req.HeightCM == nil || req.WeightKG == nil || *req.HeightCM <= 0 {
		return nil
	}
	meters := *req.HeightCM / 100
	bmi := roundTo(*req.WeightKG/(meters*meters), 1)
	return &bmi
}
