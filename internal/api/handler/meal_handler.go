package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/blaisecz/nutrition-coach/internal/service"
	"github.com/blaisecz/nutrition-coach/pkg/pagination"
	"github.com/blaisecz/nutrition-coach/pkg/problem"
)

const (
	mealImageField = "meal_image"
	mealLabelField = "meal_label"

	// DefaultMaxUploadBytes caps a meal photo upload when no limit is configured.
	DefaultMaxUploadBytes int64 = 8 << 20
)

type MealHandler struct {
	service        service.NutritionService
	maxUploadBytes int64
}

func NewMealHandler(service service.NutritionService, maxUploadBytes int64) *MealHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &MealHandler{service: service, maxUploadBytes: maxUploadBytes}
}

// Create handles POST /v1/users/{userId}/meals
// @Summary Log a meal photo
// @Description Upload a meal photo with an optional label. The photo is analysed (AI or offline estimate), stored as a meal log, and the response carries the day's totals, timing feedback and a plan for the next meal.
// @Tags meals
// @Accept multipart/form-data
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param meal_image formData file true "Meal photo (JPEG, PNG or WebP)"
// @Param meal_label formData string false "Meal label" Enums(breakfast, lunch, snack, dinner, unlabeled)
// @Success 201 {object} domain.LogMealResponse
// @Failure 400 {object} problem.Problem "Missing or empty photo"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 413 {object} problem.Problem "Photo too large"
// @Failure 415 {object} problem.Problem "Not an image"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/meals [post]
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			problem.PayloadTooLarge("Meal photo exceeds the upload limit").Write(w)
			return
		}
		problem.BadRequest("Request must be multipart/form-data with a meal_image file").Write(w)
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	file, header, err := r.FormFile(mealImageField)
	if err != nil {
		problem.BadRequest("meal_image is required").Write(w)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		problem.BadRequest("Failed to read meal_image").Write(w)
		return
	}

	mimeType := imageMimeType(header.Header.Get("Content-Type"), image)
	if len(image) > 0 && !strings.HasPrefix(mimeType, "image/") {
		problem.UnsupportedMediaType("meal_image must be an image").Write(w)
		return
	}

	resp, err := h.service.LogMeal(r.Context(), userID, domain.LogMealInput{
		MealLabel: domain.ParseMealLabel(r.FormValue(mealLabelField)),
		Image:     image,
		MimeType:  mimeType,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyImage):
			problem.BadRequest("meal_image is empty").Write(w)
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		default:
			problem.InternalError("Failed to log meal").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Today handles GET /v1/users/{userId}/nutrition/today
// @Summary Daily nutrition summary
// @Description Macro totals and chronological meals for one calendar day in the user's timezone. Defaults to today.
// @Tags meals
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param date query string false "Local date (YYYY-MM-DD)" example(2024-01-16)
// @Success 200 {object} domain.DailySummaryResponse
// @Failure 400 {object} problem.Problem "Invalid date"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/nutrition/today [get]
func (h *MealHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.DailySummary(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("date must be YYYY-MM-DD").Write(w)
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		default:
			problem.InternalError("Failed to load daily summary").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /v1/users/{userId}/meals
// @Summary List meal logs
// @Description Paginated meal history, newest first. Filter by time range.
// @Tags meals
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Start of range (RFC3339)" format(date-time)
// @Param to query string false "End of range (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.MealLogListResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/meals [get]
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseMealFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list meal logs").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func parseMealFilter(r *http.Request) (domain.MealLogFilter, []problem.FieldError) {
	var filter domain.MealLogFilter
	var fieldErrors []problem.FieldError
	query := r.URL.Query()

	parseTime := func(name string) *time.Time {
		raw := query.Get(name)
		if raw == "" {
			return nil
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   name,
				Message: "must be a valid RFC3339 timestamp",
			})
			return nil
		}
		return &t
	}
	filter.From = parseTime("from")
	filter.To = parseTime("to")

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "to",
			Message: "must not be before from",
		})
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > pagination.MaxLimit {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be an integer between 1 and 100",
			})
		} else {
			filter.Limit = limit
		}
	}

	if cursor := query.Get("cursor"); cursor != "" {
		if _, err := pagination.DecodeCursor(cursor); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "cursor",
				Message: "is not a valid cursor",
			})
		} else {
			filter.Cursor = cursor
		}
	}

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}

// imageMimeType prefers the declared part type and sniffs the bytes otherwise.
func imageMimeType(declared string, image []byte) string {
	if declared != "" && declared != "application/octet-stream" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
			return mediaType
		}
	}
	if len(image) == 0 {
		return ""
	}
	return http.DetectContentType(image)
}
