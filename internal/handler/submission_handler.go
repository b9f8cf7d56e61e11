package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sarigama-github/agama-backend/internal/model"
	"github.com/sarigama-github/agama-backend/internal/response"
	"github.com/sarigama-github/agama-backend/internal/service"
	"github.com/sarigama-github/agama-backend/internal/validator"
)

// SubmissionHandler handles quiz grading submissions.
type SubmissionHandler struct {
	grading *service.GradingService
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(grading *service.GradingService) *SubmissionHandler {
	return &SubmissionHandler{grading: grading}
}

// Submit godoc
// POST /quizzes/:quiz_id/submit
// Grades the answers and returns score, correct/total counts and the
// per-question breakdown.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.SubmitRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.grading.Submit(c.Request.Context(), quizID, req.Answers)
	switch {
	case errors.Is(err, service.ErrNoQuestions):
		response.Fail(c, http.StatusNotFound, response.ErrNoQuestions)
		return
	case errors.Is(err, service.ErrAnswerCountMismatch):
		response.Fail(c, http.StatusBadRequest, response.ErrAnswerCountMismatch)
		return
	case err != nil:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, result)
}
