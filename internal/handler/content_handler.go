package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sarigama-github/agama-backend/internal/response"
	"github.com/sarigama-github/agama-backend/internal/validator"
)

// DefaultListLimit caps list responses when no limit query is given.
const DefaultListLimit = 50

// ContentStore persists one content type.
type ContentStore[T any] interface {
	Insert(ctx context.Context, item *T) (uuid.UUID, error)
	List(ctx context.Context, limit int) ([]T, error)
}

// ContentReplacer adds full-row replacement for content types that support
// updates (materials and quizzes; videos and photos do not).
type ContentReplacer[T any] interface {
	Replace(ctx context.Context, id uuid.UUID, item *T) (bool, error)
}

// ContentHandler is the one generic CRUD surface shared by all four content
// types. The four resources differ only in their model type and in whether
// a replacer is wired.
type ContentHandler[T any] struct {
	store    ContentStore[T]
	replacer ContentReplacer[T] // nil when the resource has no update endpoint
}

// NewContentHandler creates a ContentHandler. Pass a nil replacer for
// resources without an update endpoint.
func NewContentHandler[T any](store ContentStore[T], replacer ContentReplacer[T]) *ContentHandler[T] {
	return &ContentHandler[T]{store: store, replacer: replacer}
}

// Create handles POST /<resource>. Admin only.
func (h *ContentHandler[T]) Create(c *gin.Context) {
	var item T
	if fields := validator.Bind(c, &item); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	id, err := h.store.Insert(c.Request.Context(), &item)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// List handles GET /<resource>?limit=N. Public.
func (h *ContentHandler[T]) List(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	items, err := h.store.List(c.Request.Context(), limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if items == nil {
		items = []T{}
	}

	response.Success(c, http.StatusOK, items)
}

// Update handles PUT /<resource>/:id. Admin only. The whole row is replaced;
// replacing with identical content still succeeds.
func (h *ContentHandler[T]) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var item T
	if fields := validator.Bind(c, &item); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	matched, err := h.replacer.Replace(c.Request.Context(), id, &item)
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

// parseLimit reads the optional limit query, defaulting to DefaultListLimit.
// Writes a 400 response and returns false on a non-positive or non-numeric
// value.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("limit", strconv.Itoa(DefaultListLimit))
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"limit": "limit harus berupa bilangan bulat positif"})
		return 0, false
	}
	return limit, true
}
