package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sarigama-github/agama-backend/internal/model"
	"github.com/sarigama-github/agama-backend/internal/response"
	"github.com/sarigama-github/agama-backend/internal/validator"
)

// QuestionStore persists quiz questions.
type QuestionStore interface {
	Create(ctx context.Context, q *model.Question) (uuid.UUID, error)
	ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.Question, error)
	Replace(ctx context.Context, id uuid.UUID, q *model.Question) (bool, error)
}

// QuestionHandler handles question management endpoints.
type QuestionHandler struct {
	store QuestionStore
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(store QuestionStore) *QuestionHandler {
	return &QuestionHandler{store: store}
}

// Create godoc
// POST /questions
// The quiz_id is checked for format only; the quiz's existence is not.
func (h *QuestionHandler) Create(c *gin.Context) {
	question, ok := bindQuestion(c)
	if !ok {
		return
	}

	id, err := h.store.Create(c.Request.Context(), question)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// ListByQuiz godoc
// GET /quizzes/:quiz_id/questions
func (h *QuestionHandler) ListByQuiz(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	questions, err := h.store.ListByQuiz(c.Request.Context(), quizID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if questions == nil {
		questions = []model.Question{}
	}

	response.Success(c, http.StatusOK, questions)
}

// Update godoc
// PUT /questions/:id
func (h *QuestionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	question, ok := bindQuestion(c)
	if !ok {
		return
	}

	matched, err := h.store.Replace(c.Request.Context(), id, question)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if !matched {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

// bindQuestion binds and validates a question payload, including the
// quiz_id format check and the correct_index bounds check. It writes the
// error response itself and returns false on failure.
func bindQuestion(c *gin.Context) (*model.Question, bool) {
	var req model.QuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return nil, false
	}

	quizID, err := uuid.Parse(req.QuizID)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return nil, false
	}

	if *req.CorrectIndex >= len(req.Options) {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"correct_index": "correct_index harus berada dalam rentang options (0-" + strconv.Itoa(len(req.Options)-1) + ")"})
		return nil, false
	}

	return &model.Question{
		QuizID:       quizID,
		Text:         req.Text,
		Options:      req.Options,
		CorrectIndex: *req.CorrectIndex,
	}, true
}
