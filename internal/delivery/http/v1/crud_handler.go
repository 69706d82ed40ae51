package v1

import (
	"net/http"
	"strconv"

	"cv-manager-backend/internal/delivery/http/response"
	"cv-manager-backend/internal/domain"
	"cv-manager-backend/pkg/apperror"
	"cv-manager-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CrudHandler serves list/get/create/update/delete for one entity.
type CrudHandler[E any, C any, U any] struct {
	uc        domain.CrudUsecase[E, C, U]
	label     string
	withCount bool
}

type CrudOption func(*crudOptions)

type crudOptions struct {
	withCount bool
}

// WithCount makes the list route answer with {data, count}.
func WithCount() CrudOption {
	return func(o *crudOptions) { o.withCount = true }
}

func NewCrudHandler[E any, C any, U any](uc domain.CrudUsecase[E, C, U], label string, opts ...CrudOption) *CrudHandler[E, C, U] {
	var o crudOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &CrudHandler[E, C, U]{uc: uc, label: label, withCount: o.withCount}
}

func (h *CrudHandler[E, C, U]) List(c *gin.Context) {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		c.Error(err)
		return
	}
	limit, err := queryInt(c, "limit", domain.DefaultListLimit)
	if err != nil {
		c.Error(err)
		return
	}

	list, err := h.uc.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.Error(err)
		return
	}

	if !h.withCount {
		response.Success(c, http.StatusOK, h.label+" list", list)
		return
	}

	count, err := h.uc.Count(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, h.label+" list", response.Page[E]{Data: list, Count: count})
}

func (h *CrudHandler[E, C, U]) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	e, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, h.label+" details", e)
}

func (h *CrudHandler[E, C, U]) Create(c *gin.Context) {
	var in C
	if err := bindJSON(c, &in); err != nil {
		c.Error(err)
		return
	}

	e, err := h.uc.Create(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, h.label+" created", e)
}

func (h *CrudHandler[E, C, U]) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var in U
	if err := bindJSON(c, &in); err != nil {
		c.Error(err)
		return
	}

	e, err := h.uc.Update(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, h.label+" updated", e)
}

func (h *CrudHandler[E, C, U]) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, h.label+" deleted successfully", nil)
}

func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.BadRequest("Invalid ID format")
	}
	return id, nil
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.BadRequest(name + " must be an integer")
	}
	return v, nil
}

// bindJSON decodes the body only; validation happens in the use case.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperror.Validation("Invalid request body", validation.FormatBindingError(err))
	}
	return nil
}
