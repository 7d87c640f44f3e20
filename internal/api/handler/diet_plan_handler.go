package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/blaisecz/nutrition-coach/internal/api/validation"
	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/blaisecz/nutrition-coach/internal/service"
	"github.com/blaisecz/nutrition-coach/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type DietPlanHandler struct {
	service service.DietPlanService
}

func NewDietPlanHandler(service service.DietPlanService) *DietPlanHandler {
	return &DietPlanHandler{service: service}
}

// Create handles POST /v1/users/{userId}/diet-plans
// @Summary Generate a diet plan
// @Description Generate a timing-aware diet plan from body, medical and preference data merged with the stored lifestyle schedule. Falls back to a local template when the AI model is unavailable.
// @Tags diet-plans
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.DietPlanRequest false "Diet plan inputs"
// @Success 201 {object} domain.DietPlanResponse
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/diet-plans [post]
func (h *DietPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.DietPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Generate(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to generate diet plan").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Get handles GET /v1/users/{userId}/diet-plans/{planId}
// @Summary Get a diet plan
// @Description Return a stored diet plan with the payload it was generated from.
// @Tags diet-plans
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param planId path string true "Plan UUID" format(uuid)
// @Success 200 {object} domain.DietPlanResponse
// @Failure 400 {object} problem.Problem "Invalid ID"
// @Failure 404 {object} problem.Problem "Plan not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/diet-plans/{planId} [get]
func (h *DietPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	planID, err := uuid.Parse(chi.URLParam(r, "planId"))
	if err != nil {
		problem.BadRequest("Invalid plan ID format").Write(w)
		return
	}

	resp, err := h.service.Get(r.Context(), userID, planID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Diet plan not found").Write(w)
			return
		}
		problem.InternalError("Failed to get diet plan").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
