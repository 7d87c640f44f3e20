package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/google/uuid"
)

func TestDietPlanHandler_Create(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockService    *MockDietPlanService
		wantStatusCode int
	}{
		{
			name:           "full request",
			body:           `{"age": 29, "height_cm": 162, "weight_kg": 58, "diet_preference": "vegetarian", "sleep_time": "23:00"}`,
			mockService:    &MockDietPlanService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "empty body uses stored profile",
			body:           ``,
			mockService:    &MockDietPlanService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid timing override is not rejected",
			body:           `{"dinner_time": "late"}`,
			mockService:    &MockDietPlanService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "unknown diet preference",
			body:           `{"diet_preference": "carnivore"}`,
			mockService:    &MockDietPlanService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "age out of range",
			body:           `{"age": 0}`,
			mockService:    &MockDietPlanService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid JSON",
			body:           `{"age":`,
			mockService:    &MockDietPlanService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "user not found",
			body: `{}`,
			mockService: &MockDietPlanService{
				generateFunc: func(ctx context.Context, userID uuid.UUID, req *domain.DietPlanRequest) (*domain.DietPlanResponse, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewDietPlanHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/diet-plans", bytes.NewBufferString(tt.body))
			req = req.WithContext(withURLParams(req.Context(), map[string]string{"userId": userID.String()}))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestDietPlanHandler_Get(t *testing.T) {
	userID := uuid.New()
	planID := uuid.New()

	tests := []struct {
		name           string
		planID         string
		wantStatusCode int
	}{
		{"existing plan", planID.String(), http.StatusOK},
		{"unknown plan", uuid.NewString(), http.StatusNotFound},
		{"invalid plan id", "plan-1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewDietPlanHandler(&MockDietPlanService{
				getFunc: func(ctx context.Context, uid, pid uuid.UUID) (*domain.DietPlanResponse, error) {
					if uid == userID && pid == planID {
						return &domain.DietPlanResponse{ID: pid, UserID: uid}, nil
					}
					return nil, domain.ErrNotFound
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/diet-plans/"+tt.planID, nil)
			req = req.WithContext(withURLParams(req.Context(), map[string]string{
				"userId": userID.String(),
				"planId": tt.planID,
			}))
			rec := httptest.NewRecorder()

			handler.Get(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Get() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}
