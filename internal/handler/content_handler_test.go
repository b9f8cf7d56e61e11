package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sarigama-github/agama-backend/internal/model"
)

type fakeContentStore[T any] struct {
	insertID  uuid.UUID
	insertErr error
	inserted  []*T
	items     []T
	listErr   error
	lastLimit int
}

func (f *fakeContentStore[T]) Insert(_ context.Context, item *T) (uuid.UUID, error) {
	if f.insertErr != nil {
		return uuid.Nil, f.insertErr
	}
	f.inserted = append(f.inserted, item)
	return f.insertID, nil
}

func (f *fakeContentStore[T]) List(_ context.Context, limit int) ([]T, error) {
	f.lastLimit = limit
	return f.items, f.listErr
}

type fakeReplacer[T any] struct {
	matched bool
	err     error
	gotID   uuid.UUID
	calls   int
}

func (f *fakeReplacer[T]) Replace(_ context.Context, id uuid.UUID, _ *T) (bool, error) {
	f.calls++
	f.gotID = id
	return f.matched, f.err
}

func materialRouter(store *fakeContentStore[model.Material], replacer *fakeReplacer[model.Material]) *gin.Engine {
	h := NewContentHandler[model.Material](store, replacer)
	r := gin.New()
	r.POST("/materials", h.Create)
	r.GET("/materials", h.List)
	r.PUT("/materials/:id", h.Update)
	return r
}

func TestContentCreate(t *testing.T) {
	id := uuid.New()
	store := &fakeContentStore[model.Material]{insertID: id}
	r := materialRouter(store, nil)

	body := `{"title": "Rukun Iman", "content": "Penjelasan rukun iman."}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/materials", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}

	var data struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.ID != id {
		t.Errorf("id = %s, want %s", data.ID, id)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d items, want 1", len(store.inserted))
	}
	if store.inserted[0].Title != "Rukun Iman" {
		t.Errorf("inserted title = %q", store.inserted[0].Title)
	}
}

func TestContentCreateMissingRequiredField(t *testing.T) {
	store := &fakeContentStore[model.Material]{insertID: uuid.New()}
	r := materialRouter(store, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/materials", strings.NewReader(`{"title": "Tanpa isi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if code := errCode(t, w); code != "VALIDATION_ERROR" {
		t.Errorf("error code = %q, want VALIDATION_ERROR", code)
	}
	if len(store.inserted) != 0 {
		t.Errorf("store touched on invalid payload")
	}
}

func TestContentListDefaultLimit(t *testing.T) {
	store := &fakeContentStore[model.Material]{items: []model.Material{{Title: "A"}}}
	r := materialRouter(store, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/materials", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if store.lastLimit != DefaultListLimit {
		t.Errorf("limit = %d, want %d", store.lastLimit, DefaultListLimit)
	}
}

func TestContentListExplicitLimit(t *testing.T) {
	store := &fakeContentStore[model.Material]{}
	r := materialRouter(store, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/materials?limit=5", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if store.lastLimit != 5 {
		t.Errorf("limit = %d, want 5", store.lastLimit)
	}

	// Empty result serializes as [], not null.
	if data := string(decodeEnvelope(t, w).Data); data != "[]" {
		t.Errorf("data = %s, want []", data)
	}
}

func TestContentListBadLimit(t *testing.T) {
	r := materialRouter(&fakeContentStore[model.Material]{}, nil)

	for _, limit := range []string{"abc", "0", "-3"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/materials?limit="+limit, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: status = %d, want 400", limit, w.Code)
		}
	}
}

func TestContentUpdate(t *testing.T) {
	validBody := `{"title": "Rukun Islam", "content": "Penjelasan baru."}`

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		replacer := &fakeReplacer[model.Material]{}
		r := materialRouter(&fakeContentStore[model.Material]{}, replacer)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/materials/not-a-uuid", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if code := errCode(t, w); code != "INVALID_ID" {
			t.Errorf("error code = %q, want INVALID_ID", code)
		}
		if replacer.calls != 0 {
			t.Errorf("store touched on malformed id")
		}
	})

	t.Run("well-formed id with no match", func(t *testing.T) {
		replacer := &fakeReplacer[model.Material]{matched: false}
		r := materialRouter(&fakeContentStore[model.Material]{}, replacer)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/materials/"+uuid.NewString(), strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		if code := errCode(t, w); code != "NOT_FOUND" {
			t.Errorf("error code = %q, want NOT_FOUND", code)
		}
	})

	t.Run("matched replace", func(t *testing.T) {
		id := uuid.New()
		replacer := &fakeReplacer[model.Material]{matched: true}
		r := materialRouter(&fakeContentStore[model.Material]{}, replacer)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/materials/"+id.String(), strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
		}
		if replacer.gotID != id {
			t.Errorf("replacer id = %s, want %s", replacer.gotID, id)
		}

		var data struct {
			Updated bool `json:"updated"`
		}
		if err := json.Unmarshal(decodeEnvelope(t, w).Data, &data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if !data.Updated {
			t.Errorf("updated = false, want true")
		}
	})
}

func TestContentCreateStoreFailure(t *testing.T) {
	store := &fakeContentStore[model.Material]{insertErr: errors.New("connection refused")}
	r := materialRouter(store, nil)

	body := `{"title": "Rukun Iman", "content": "Isi."}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/materials", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if code := errCode(t, w); code != "INTERNAL_ERROR" {
		t.Errorf("error code = %q, want INTERNAL_ERROR", code)
	}
}
