package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/nutrition-coach/internal/api/validation"
	"github.com/blaisecz/nutrition-coach/internal/langfuse"
	"github.com/blaisecz/nutrition-coach/internal/logger"
	"github.com/blaisecz/nutrition-coach/pkg/problem"
)

// FeedbackHandler records user ratings of AI responses.
type FeedbackHandler struct {
	langfuseClient langfuse.Client
}

func NewFeedbackHandler(langfuseClient langfuse.Client) *FeedbackHandler {
	return &FeedbackHandler{langfuseClient: langfuseClient}
}

// FeedbackRequest is the request body for AI response feedback.
// @Description Rating for a diet plan or meal analysis, linked by trace ID.
type FeedbackRequest struct {
	// Trace ID from a diet plan or meal log response
	TraceID string `json:"trace_id" validate:"required,max=64" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" validate:"min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"max=1000" example:"The dinner ideas were useful"`
}

// Create handles POST /v1/users/{userId}/feedback
// @Summary Submit feedback on an AI response
// @Description Submit a rating and optional comment for a previous diet plan or meal analysis.
// @Tags feedback
// @Accept json
// @Param userId path string true "User UUID" format(uuid)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Router /users/{userId}/feedback [post]
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	// Feedback is accepted even when the score cannot be forwarded
	if h.langfuseClient != nil && h.langfuseClient.IsEnabled() {
		err := h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
			TraceID: req.TraceID,
			Name:    langfuse.ScoreUserRating,
			Value:   float64(req.Score),
			Comment: req.Comment,
		})
		if err != nil {
			logger.Warn("feedback score not sent", "user_id", userID, "trace_id", req.TraceID, "err", err)
		}
	} else {
		logger.Debug("feedback received without langfuse", "user_id", userID, "score", req.Score)
	}

	w.WriteHeader(http.StatusNoContent)
}
