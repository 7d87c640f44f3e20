package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/nutrition-coach/internal/api/validation"
	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/blaisecz/nutrition-coach/internal/service"
	"github.com/blaisecz/nutrition-coach/pkg/problem"
)

type LifestyleHandler struct {
	service service.LifestyleService
}

func NewLifestyleHandler(service service.LifestyleService) *LifestyleHandler {
	return &LifestyleHandler{service: service}
}

// Get handles GET /v1/users/{userId}/lifestyle
// @Summary Get lifestyle schedule
// @Description Stored daily timings with the derived sleep duration and status. Users without a schedule get null timings and status "unknown".
// @Tags lifestyle
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.LifestyleResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/lifestyle [get]
func (h *LifestyleHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to get lifestyle schedule").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /v1/users/{userId}/lifestyle
// @Summary Replace lifestyle schedule
// @Description Replace the user's daily timings. Every value must be HH:MM (24h); omitted fields are cleared.
// @Tags lifestyle
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.UpdateLifestyleRequest true "Daily timings"
// @Success 200 {object} domain.LifestyleResponse
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid time values"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/lifestyle [put]
func (h *LifestyleHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateLifestyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Times must be in HH:MM (24h) format", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.ValidationError(err.Error(), nil).Write(w)
		default:
			problem.InternalError("Failed to update lifestyle schedule").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
