package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sarigama-github/agama-backend/internal/model"
)

type fakeQuestionStore struct {
	createID   uuid.UUID
	created    []*model.Question
	byQuiz     []model.Question
	listedQuiz uuid.UUID
	matched    bool
	replaced   []*model.Question
}

func (f *fakeQuestionStore) Create(_ context.Context, q *model.Question) (uuid.UUID, error) {
	f.created = append(f.created, q)
	return f.createID, nil
}

func (f *fakeQuestionStore) ListByQuiz(_ context.Context, quizID uuid.UUID) ([]model.Question, error) {
	f.listedQuiz = quizID
	return f.byQuiz, nil
}

func (f *fakeQuestionStore) Replace(_ context.Context, _ uuid.UUID, q *model.Question) (bool, error) {
	f.replaced = append(f.replaced, q)
	return f.matched, nil
}

func questionRouter(store *fakeQuestionStore) *gin.Engine {
	h := NewQuestionHandler(store)
	r := gin.New()
	r.POST("/questions", h.Create)
	r.GET("/quizzes/:quiz_id/questions", h.ListByQuiz)
	r.PUT("/questions/:id", h.Update)
	return r
}

func postJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestQuestionCreate(t *testing.T) {
	quizID := uuid.NewString()

	t.Run("valid question", func(t *testing.T) {
		store := &fakeQuestionStore{createID: uuid.New()}
		r := questionRouter(store)

		body := `{"quiz_id": "` + quizID + `", "text": "Siapa nabi terakhir?", "options": ["Musa", "Muhammad"], "correct_index": 1}`
		w := postJSON(r, http.MethodPost, "/questions", body)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201 (body: %s)", w.Code, w.Body.String())
		}
		if len(store.created) != 1 {
			t.Fatalf("created %d questions, want 1", len(store.created))
		}
		if got := store.created[0]; got.CorrectIndex != 1 || got.QuizID.String() != quizID {
			t.Errorf("unexpected stored question: %+v", got)
		}
	})

	t.Run("correct_index zero is accepted", func(t *testing.T) {
		store := &fakeQuestionStore{createID: uuid.New()}
		r := questionRouter(store)

		body := `{"quiz_id": "` + quizID + `", "text": "Berapa rukun Islam?", "options": ["Lima", "Enam"], "correct_index": 0}`
		w := postJSON(r, http.MethodPost, "/questions", body)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201 (body: %s)", w.Code, w.Body.String())
		}
	})

	t.Run("malformed quiz_id", func(t *testing.T) {
		store := &fakeQuestionStore{}
		r := questionRouter(store)

		body := `{"quiz_id": "bukan-uuid", "text": "T?", "options": ["a", "b"], "correct_index": 0}`
		w := postJSON(r, http.MethodPost, "/questions", body)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if code := errCode(t, w); code != "INVALID_ID" {
			t.Errorf("error code = %q, want INVALID_ID", code)
		}
		if len(store.created) != 0 {
			t.Errorf("store touched on malformed quiz_id")
		}
	})

	t.Run("correct_index out of options range", func(t *testing.T) {
		store := &fakeQuestionStore{}
		r := questionRouter(store)

		body := `{"quiz_id": "` + quizID + `", "text": "T?", "options": ["a", "b"], "correct_index": 2}`
		w := postJSON(r, http.MethodPost, "/questions", body)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if code := errCode(t, w); code != "VALIDATION_ERROR" {
			t.Errorf("error code = %q, want VALIDATION_ERROR", code)
		}
	})

	t.Run("fewer than two options", func(t *testing.T) {
		store := &fakeQuestionStore{}
		r := questionRouter(store)

		body := `{"quiz_id": "` + quizID + `", "text": "T?", "options": ["a"], "correct_index": 0}`
		w := postJSON(r, http.MethodPost, "/questions", body)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("missing correct_index", func(t *testing.T) {
		store := &fakeQuestionStore{}
		r := questionRouter(store)

		body := `{"quiz_id": "` + quizID + `", "text": "T?", "options": ["a", "b"]}`
		w := postJSON(r, http.MethodPost, "/questions", body)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestQuestionListByQuiz(t *testing.T) {
	quizID := uuid.New()
	store := &fakeQuestionStore{byQuiz: []model.Question{
		{ID: uuid.New(), QuizID: quizID, Text: "Q1", Options: []string{"a", "b"}, CorrectIndex: 0},
	}}
	r := questionRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quizzes/"+quizID.String()+"/questions", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if store.listedQuiz != quizID {
		t.Errorf("listed quiz = %s, want %s", store.listedQuiz, quizID)
	}

	var questions []model.Question
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &questions); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(questions) != 1 || questions[0].Text != "Q1" {
		t.Errorf("unexpected questions: %+v", questions)
	}
}

func TestQuestionListMalformedQuizID(t *testing.T) {
	r := questionRouter(&fakeQuestionStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quizzes/bukan-uuid/questions", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if code := errCode(t, w); code != "INVALID_ID" {
		t.Errorf("error code = %q, want INVALID_ID", code)
	}
}

func TestQuestionUpdateNotFound(t *testing.T) {
	store := &fakeQuestionStore{matched: false}
	r := questionRouter(store)

	body := `{"quiz_id": "` + uuid.NewString() + `", "text": "T?", "options": ["a", "b"], "correct_index": 0}`
	w := postJSON(r, http.MethodPut, "/questions/"+uuid.NewString(), body)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
