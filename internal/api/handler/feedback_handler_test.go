package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blaisecz/nutrition-coach/internal/langfuse"
	"github.com/google/uuid"
)

func TestFeedbackHandler_Create(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		client         *mockLangfuseClient
		wantStatusCode int
		wantScores     int
	}{
		{
			name:           "valid feedback",
			body:           `{"trace_id": "abc123", "score": 5, "comment": "Great plan"}`,
			client:         &mockLangfuseClient{enabled: true},
			wantStatusCode: http.StatusNoContent,
			wantScores:     1,
		},
		{
			name:           "langfuse disabled still accepts",
			body:           `{"trace_id": "abc123", "score": 3}`,
			client:         &mockLangfuseClient{enabled: false},
			wantStatusCode: http.StatusNoContent,
			wantScores:     0,
		},
		{
			name:           "score error is not surfaced",
			body:           `{"trace_id": "abc123", "score": 2}`,
			client:         &mockLangfuseClient{enabled: true, err: errors.New("langfuse down")},
			wantStatusCode: http.StatusNoContent,
			wantScores:     1,
		},
		{
			name:           "missing trace id",
			body:           `{"score": 4}`,
			client:         &mockLangfuseClient{enabled: true},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "score too low",
			body:           `{"trace_id": "abc123", "score": 0}`,
			client:         &mockLangfuseClient{enabled: true},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "score too high",
			body:           `{"trace_id": "abc123", "score": 6}`,
			client:         &mockLangfuseClient{enabled: true},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid JSON",
			body:           `not json`,
			client:         &mockLangfuseClient{enabled: true},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewFeedbackHandler(tt.client)

			req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/feedback", strings.NewReader(tt.body))
			req = req.WithContext(withURLParams(req.Context(), map[string]string{"userId": userID.String()}))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if len(tt.client.scores) != tt.wantScores {
				t.Fatalf("scores sent = %d, want %d", len(tt.client.scores), tt.wantScores)
			}
			if tt.wantScores > 0 && tt.client.scores[0].Name != langfuse.ScoreUserRating {
				t.Errorf("score name = %s, want %s", tt.client.scores[0].Name, langfuse.ScoreUserRating)
			}
		})
	}
}

func TestFeedbackHandler_NilClient(t *testing.T) {
	handler := NewFeedbackHandler(nil)
	userID := uuid.NewString()

	req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID+"/feedback", strings.NewReader(`{"trace_id": "t", "score": 4}`))
	req = req.WithContext(withURLParams(req.Context(), map[string]string{"userId": userID}))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}
