package handler

import (
	"context"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/blaisecz/nutrition-coach/internal/langfuse"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Email: req.Email, FullName: req.FullName, Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockLifestyleService is a mock implementation of LifestyleService
type MockLifestyleService struct {
	getFunc    func(ctx context.Context, userID uuid.UUID) (*domain.LifestyleResponse, error)
	updateFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpdateLifestyleRequest) (*domain.LifestyleResponse, error)
}

func (m *MockLifestyleService) Get(ctx context.Context, userID uuid.UUID) (*domain.LifestyleResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return &domain.LifestyleResponse{
		UserID:        userID,
		SleepAnalysis: domain.SleepAnalysis{SleepStatus: domain.SleepStatusUnknown},
	}, nil
}

func (m *MockLifestyleService) Update(ctx context.Context, userID uuid.UUID, req *domain.UpdateLifestyleRequest) (*domain.LifestyleResponse, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, req)
	}
	return &domain.LifestyleResponse{
		UserID: userID,
		LifestyleTiming: domain.LifestyleTiming{
			WakeTime:  req.WakeTime,
			SleepTime: req.SleepTime,
		},
		SleepAnalysis: domain.SleepAnalysis{SleepStatus: domain.SleepStatusUnknown},
	}, nil
}

// MockNutritionService is a mock implementation of NutritionService
type MockNutritionService struct {
	logMealFunc      func(ctx context.Context, userID uuid.UUID, in domain.LogMealInput) (*domain.LogMealResponse, error)
	dailySummaryFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySummaryResponse, error)
	listFunc         func(ctx context.Context, userID uuid.UUID, filter domain.MealLogFilter) (*domain.MealLogListResponse, error)
}

func (m *MockNutritionService) LogMeal(ctx context.Context, userID uuid.UUID, in domain.LogMealInput) (*domain.LogMealResponse, error) {
	if m.logMealFunc != nil {
		return m.logMealFunc(ctx, userID, in)
	}
	return &domain.LogMealResponse{
		Log: domain.MealLogResponse{ID: uuid.New(), UserID: userID, MealLabel: in.MealLabel, LoggedAt: time.Now()},
		TimingFeedback: domain.TimingFeedback{
			Tags: []string{},
		},
	}, nil
}

func (m *MockNutritionService) DailySummary(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySummaryResponse, error) {
	if m.dailySummaryFunc != nil {
		return m.dailySummaryFunc(ctx, userID, date)
	}
	return &domain.DailySummaryResponse{Date: date, Timezone: "UTC", Meals: []domain.MealLogResponse{}}, nil
}

func (m *MockNutritionService) List(ctx context.Context, userID uuid.UUID, filter domain.MealLogFilter) (*domain.MealLogListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.MealLogListResponse{
		Data:       []domain.MealLogResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockNutritionService) AggregateDailyNutrition(ctx context.Context, userID uuid.UUID, day time.Time) (domain.DayTotals, error) {
	return domain.DayTotals{}, nil
}

func (m *MockNutritionService) ListDailyMealLogs(ctx context.Context, userID uuid.UUID, day time.Time) ([]domain.MealLog, error) {
	return nil, nil
}

// MockDietPlanService is a mock implementation of DietPlanService
type MockDietPlanService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID, req *domain.DietPlanRequest) (*domain.DietPlanResponse, error)
	getFunc      func(ctx context.Context, userID, planID uuid.UUID) (*domain.DietPlanResponse, error)
}

func (m *MockDietPlanService) Generate(ctx context.Context, userID uuid.UUID, req *domain.DietPlanRequest) (*domain.DietPlanResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, req)
	}
	return &domain.DietPlanResponse{ID: uuid.New(), UserID: userID, AIModel: "local-fallback"}, nil
}

func (m *MockDietPlanService) Get(ctx context.Context, userID, planID uuid.UUID) (*domain.DietPlanResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID, planID)
	}
	return nil, domain.ErrNotFound
}

// mockLangfuseClient records scores sent by the feedback handler
type mockLangfuseClient struct {
	enabled bool
	scores  []langfuse.ScoreInput
	err     error
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return m.err
}

// withURLParams attaches chi URL params to a request, as the router would
func withURLParams(ctx context.Context, params map[string]string) context.Context {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}
