package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/blaisecz/nutrition-coach/pkg/pagination"
	"github.com/google/uuid"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

// multipartBody builds a meal upload; a nil image omits the file part.
func multipartBody(t *testing.T, label string, image []byte, contentType string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if label != "" {
		if err := mw.WriteField("meal_label", label); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if image != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="meal_image"; filename="meal.png"`)
		if contentType != "" {
			header.Set("Content-Type", contentType)
		}
		part, err := mw.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		part.Write(image)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func newMealRequest(t *testing.T, userID string, body *bytes.Buffer, contentType string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID+"/meals", body)
	req.Header.Set("Content-Type", contentType)
	return req.WithContext(withURLParams(req.Context(), map[string]string{"userId": userID}))
}

func TestMealHandler_Create(t *testing.T) {
	userID := uuid.New()
	var got domain.LogMealInput
	svc := &MockNutritionService{
		logMealFunc: func(ctx context.Context, id uuid.UUID, in domain.LogMealInput) (*domain.LogMealResponse, error) {
			got = in
			return &domain.LogMealResponse{
				Log:            domain.MealLogResponse{ID: uuid.New(), UserID: id, MealLabel: in.MealLabel},
				DayTotals:      domain.DayTotals{Calories: 550},
				TimingFeedback: domain.TimingFeedback{Tags: []string{domain.TagEarlyLunch}},
			}, nil
		},
	}
	handler := NewMealHandler(svc, 0)

	body, ct := multipartBody(t, "Lunch", pngHeader, "image/png")
	rec := httptest.NewRecorder()
	handler.Create(rec, newMealRequest(t, userID.String(), body, ct))

	if rec.Code != http.StatusCreated {
		t.Fatalf("Create() status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if got.MealLabel != domain.MealLabelLunch {
		t.Errorf("label = %s, want lunch", got.MealLabel)
	}
	if got.MimeType != "image/png" {
		t.Errorf("mime = %s, want image/png", got.MimeType)
	}
	if !bytes.Equal(got.Image, pngHeader) {
		t.Error("image bytes were not passed through")
	}

	var resp domain.LogMealResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.DayTotals.Calories != 550 || len(resp.TimingFeedback.Tags) != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestMealHandler_Create_SniffsMimeAndDefaultsLabel(t *testing.T) {
	var got domain.LogMealInput
	handler := NewMealHandler(&MockNutritionService{
		logMealFunc: func(ctx context.Context, id uuid.UUID, in domain.LogMealInput) (*domain.LogMealResponse, error) {
			got = in
			return &domain.LogMealResponse{}, nil
		},
	}, 0)

	body, ct := multipartBody(t, "brunch", pngHeader, "application/octet-stream")
	rec := httptest.NewRecorder()
	handler.Create(rec, newMealRequest(t, uuid.NewString(), body, ct))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if got.MimeType != "image/png" {
		t.Errorf("mime = %s, want sniffed image/png", got.MimeType)
	}
	if got.MealLabel != domain.MealLabelUnlabeled {
		t.Errorf("label = %s, want unlabeled", got.MealLabel)
	}
}

func TestMealHandler_Create_Errors(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name           string
		userID         string
		image          []byte
		contentType    string
		maxUpload      int64
		serviceErr     error
		rawBody        string
		wantStatusCode int
	}{
		{name: "invalid user id", userID: "nope", image: pngHeader, wantStatusCode: http.StatusBadRequest},
		{name: "missing file", userID: userID, wantStatusCode: http.StatusBadRequest},
		{name: "not multipart", userID: userID, rawBody: `{"meal_label":"lunch"}`, wantStatusCode: http.StatusBadRequest},
		{name: "not an image", userID: userID, image: []byte("plain text, not a photo"), contentType: "text/plain", wantStatusCode: http.StatusUnsupportedMediaType},
		{name: "empty image", userID: userID, image: []byte{}, serviceErr: domain.ErrEmptyImage, wantStatusCode: http.StatusBadRequest},
		{name: "user not found", userID: userID, image: pngHeader, serviceErr: domain.ErrNotFound, wantStatusCode: http.StatusNotFound},
		{name: "storage failure", userID: userID, image: pngHeader, serviceErr: errors.New("db down"), wantStatusCode: http.StatusInternalServerError},
		{name: "too large", userID: userID, image: bytes.Repeat([]byte{0xff}, 4096), contentType: "image/jpeg", maxUpload: 512, wantStatusCode: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewMealHandler(&MockNutritionService{
				logMealFunc: func(ctx context.Context, id uuid.UUID, in domain.LogMealInput) (*domain.LogMealResponse, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &domain.LogMealResponse{}, nil
				},
			}, tt.maxUpload)

			var req *http.Request
			if tt.rawBody != "" {
				req = newMealRequest(t, tt.userID, bytes.NewBufferString(tt.rawBody), "application/json")
			} else {
				contentType := tt.contentType
				if contentType == "" {
					contentType = "image/png"
				}
				body, ct := multipartBody(t, "lunch", tt.image, contentType)
				req = newMealRequest(t, tt.userID, body, ct)
			}
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestMealHandler_Today(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		query          string
		serviceErr     error
		wantDate       string
		wantStatusCode int
	}{
		{name: "today", wantStatusCode: http.StatusOK},
		{name: "explicit date", query: "?date=2024-01-16", wantDate: "2024-01-16", wantStatusCode: http.StatusOK},
		{name: "invalid date", query: "?date=yesterday", serviceErr: domain.ErrInvalidInput, wantStatusCode: http.StatusBadRequest},
		{name: "user not found", serviceErr: domain.ErrNotFound, wantStatusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotDate string
			handler := NewMealHandler(&MockNutritionService{
				dailySummaryFunc: func(ctx context.Context, id uuid.UUID, date string) (*domain.DailySummaryResponse, error) {
					gotDate = date
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &domain.DailySummaryResponse{Date: date, Meals: []domain.MealLogResponse{}}, nil
				},
			}, 0)

			req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/nutrition/today"+tt.query, nil)
			req = req.WithContext(withURLParams(req.Context(), map[string]string{"userId": userID.String()}))
			rec := httptest.NewRecorder()

			handler.Today(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Today() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatusCode == http.StatusOK && gotDate != tt.wantDate {
				t.Errorf("date passed = %q, want %q", gotDate, tt.wantDate)
			}
		})
	}
}

func TestMealHandler_List(t *testing.T) {
	userID := uuid.New()
	validCursor := pagination.NewCursor(uuid.New(), time.Now()).Encode()

	tests := []struct {
		name           string
		query          string
		wantStatusCode int
		wantLimit      int
	}{
		{name: "no parameters", query: "", wantStatusCode: http.StatusOK},
		{name: "with limit", query: "?limit=10", wantStatusCode: http.StatusOK, wantLimit: 10},
		{name: "with range", query: "?from=2024-01-01T00:00:00Z&to=2024-01-31T23:59:59Z", wantStatusCode: http.StatusOK},
		{name: "with cursor", query: "?cursor=" + validCursor, wantStatusCode: http.StatusOK},
		{name: "invalid from", query: "?from=not-a-date", wantStatusCode: http.StatusUnprocessableEntity},
		{name: "to before from", query: "?from=2024-02-01T00:00:00Z&to=2024-01-01T00:00:00Z", wantStatusCode: http.StatusUnprocessableEntity},
		{name: "zero limit", query: "?limit=0", wantStatusCode: http.StatusUnprocessableEntity},
		{name: "limit too large", query: "?limit=500", wantStatusCode: http.StatusUnprocessableEntity},
		{name: "garbage cursor", query: "?cursor=not-base64!", wantStatusCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilter domain.MealLogFilter
			handler := NewMealHandler(&MockNutritionService{
				listFunc: func(ctx context.Context, id uuid.UUID, filter domain.MealLogFilter) (*domain.MealLogListResponse, error) {
					gotFilter = filter
					return &domain.MealLogListResponse{Data: []domain.MealLogResponse{}}, nil
				},
			}, 0)

			req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/meals"+tt.query, nil)
			req = req.WithContext(withURLParams(req.Context(), map[string]string{"userId": userID.String()}))
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("List() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatusCode == http.StatusOK && gotFilter.Limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", gotFilter.Limit, tt.wantLimit)
			}
		})
	}
}

func TestImageMimeType(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		image    []byte
		want     string
	}{
		{"declared jpeg", "image/jpeg", pngHeader, "image/jpeg"},
		{"declared with params", "image/webp; charset=binary", pngHeader, "image/webp"},
		{"octet stream is sniffed", "application/octet-stream", pngHeader, "image/png"},
		{"missing is sniffed", "", pngHeader, "image/png"},
		{"nothing to sniff", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := imageMimeType(tt.declared, tt.image); got != tt.want {
				t.Errorf("imageMimeType() = %q, want %q", got, tt.want)
			}
		})
	}
}
