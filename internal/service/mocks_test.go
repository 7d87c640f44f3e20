package service

import (
	"context"
	"sort"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/blaisecz/nutrition-coach/internal/langfuse"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// addUser registers a user directly and returns it.
func (m *MockUserRepository) addUser(timezone string) *domain.User {
	user := &domain.User{ID: uuid.New(), Email: uuid.NewString() + "@example.com", FullName: "Test", Timezone: timezone}
	m.users[user.ID] = user
	return user
}

// MockLifestyleRepository is a mock implementation of LifestyleRepository
type MockLifestyleRepository struct {
	schedules map[uuid.UUID]*domain.LifestyleSchedule
	err       error
}

func NewMockLifestyleRepository() *MockLifestyleRepository {
	return &MockLifestyleRepository{
		schedules: make(map[uuid.UUID]*domain.LifestyleSchedule),
	}
}

func (m *MockLifestyleRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.LifestyleSchedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	schedule, ok := m.schedules[userID]
	if !ok {
		return nil, nil
	}
	copied := *schedule
	return &copied, nil
}

func (m *MockLifestyleRepository) Upsert(ctx context.Context, schedule *domain.LifestyleSchedule) error {
	if m.err != nil {
		return m.err
	}
	if existing, ok := m.schedules[schedule.UserID]; ok {
		schedule.ID = existing.ID
		schedule.CreatedAt = existing.CreatedAt
	} else if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
		schedule.CreatedAt = time.Now()
	}
	schedule.UpdatedAt = time.Now()
	copied := *schedule
	m.schedules[schedule.UserID] = &copied
	return nil
}

// MockMealLogRepository is a mock implementation of MealLogRepository
type MockMealLogRepository struct {
	logs []domain.MealLog
	err  error
}

func NewMockMealLogRepository() *MockMealLogRepository {
	return &MockMealLogRepository{}
}

func (m *MockMealLogRepository) Create(ctx context.Context, log *domain.MealLog) error {
	if m.err != nil {
		return m.err
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	log.CreatedAt = time.Now()
	m.logs = append(m.logs, *log)
	return nil
}

func (m *MockMealLogRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.MealLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *domain.MealLog
	for i := range m.logs {
		if m.logs[i].UserID != userID {
			continue
		}
		if latest == nil || m.logs[i].LoggedAt.After(latest.LoggedAt) {
			latest = &m.logs[i]
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (m *MockMealLogRepository) ListInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.MealLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.MealLog
	for _, log := range m.logs {
		if log.UserID != userID || log.LoggedAt.Before(start) || log.LoggedAt.After(end) {
			continue
		}
		result = append(result, log)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LoggedAt.Before(result[j].LoggedAt) })
	return result, nil
}

func (m *MockMealLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.MealLogFilter) ([]domain.MealLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.MealLog
	for _, log := range m.logs {
		if log.UserID == userID {
			result = append(result, log)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LoggedAt.After(result[j].LoggedAt) })
	return result, nil
}

// MockDietRequestRepository is a mock implementation of DietRequestRepository
type MockDietRequestRepository struct {
	requests map[uuid.UUID]*domain.DietRequest
	err      error
}

func NewMockDietRequestRepository() *MockDietRequestRepository {
	return &MockDietRequestRepository{
		requests: make(map[uuid.UUID]*domain.DietRequest),
	}
}

func (m *MockDietRequestRepository) Create(ctx context.Context, req *domain.DietRequest) error {
	if m.err != nil {
		return m.err
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	req.CreatedAt = time.Now()
	m.requests[req.ID] = req
	return nil
}

func (m *MockDietRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DietRequest, error) {
	if m.err != nil {
		return nil, m.err
	}
	req, ok := m.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return req, nil
}

// MockMealAnalyzer is a mock implementation of llm.MealImageAnalyzer
type MockMealAnalyzer struct {
	result *domain.MealAnalysis
	err    error
	calls  int
}

func (m *MockMealAnalyzer) AnalyzeMeal(ctx context.Context, image []byte, mimeType string, label domain.MealLabel) (*domain.MealAnalysis, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *MockMealAnalyzer) VisionModel() string {
	return "mock-vision"
}

// MockDietPlanGenerator is a mock implementation of llm.DietPlanGenerator
type MockDietPlanGenerator struct {
	result  *domain.DietPlan
	err     error
	payload domain.DietPromptPayload
}

func (m *MockDietPlanGenerator) GeneratePlan(ctx context.Context, payload domain.DietPromptPayload) (*domain.DietPlan, error) {
	m.payload = payload
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *MockDietPlanGenerator) Model() string {
	return "mock-model"
}

// MockPhotoStore is a mock implementation of storage.PhotoStore
type MockPhotoStore struct {
	key   string
	err   error
	saved int
}

func (m *MockPhotoStore) Save(ctx context.Context, userID uuid.UUID, image []byte, mimeType string) (string, error) {
	m.saved++
	if m.err != nil {
		return "", m.err
	}
	return m.key, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled bool
	traces  []langfuse.TraceInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	if !m.enabled {
		return "", nil
	}
	m.traces = append(m.traces, in)
	if in.ID != "" {
		return in.ID, nil
	}
	return "trace-" + in.Name, nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	return nil
}

func clockPtr(hour, minute int) *domain.ClockTime {
	c := domain.NewClock(hour, minute)
	return &c
}

func floatPtr(v float64) *float64 {
	return &v
}

func strPtr(s string) *string {
	return &s
}
