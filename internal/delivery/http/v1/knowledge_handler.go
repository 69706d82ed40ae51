package v1

import (
	"cv-manager-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type KnowledgeHandler struct {
	crud *CrudHandler[domain.Knowledge, domain.KnowledgeCreate, domain.KnowledgeUpdate]
}

func NewKnowledgeHandler(protected *gin.RouterGroup, knowledgeUC domain.CrudUsecase[domain.Knowledge, domain.KnowledgeCreate, domain.KnowledgeUpdate]) {
	handler := &KnowledgeHandler{crud: NewCrudHandler(knowledgeUC, "Knowledge")}

	knowledges := protected.Group("/knowledges")
	{
		knowledges.GET("", handler.List)
		knowledges.POST("", handler.Create)
		knowledges.GET("/:id", handler.Get)
		knowledges.PUT("/:id", handler.Update)
		knowledges.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List knowledge entries
// @Tags         knowledges
// @Produce      json
// @Param        skip   query     int     false  "Rows to skip"  default(0)
// @Param        limit  query     int     false  "Page size (max 1000)"  default(100)
// @Success      200  {object}  response.Response{data=[]domain.Knowledge}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /knowledges [get]
// @Security     BearerAuth
func (h *KnowledgeHandler) List(c *gin.Context) {
	h.crud.List(c)
}

// Create godoc
// @Summary      Create a knowledge entry
// @Tags         knowledges
// @Accept       json
// @Produce      json
// @Param        body   body      domain.KnowledgeCreate  true  "Knowledge to create"
// @Success      201  {object}  response.Response{data=domain.Knowledge}
// @Failure      401  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /knowledges [post]
// @Security     BearerAuth
func (h *KnowledgeHandler) Create(c *gin.Context) {
	h.crud.Create(c)
}

// Get godoc
// @Summary      Get a knowledge entry
// @Tags         knowledges
// @Produce      json
// @Param        id     path      string  true  "Knowledge ID"
// @Success      200  {object}  response.Response{data=domain.Knowledge}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /knowledges/{id} [get]
// @Security     BearerAuth
func (h *KnowledgeHandler) Get(c *gin.Context) {
	h.crud.Get(c)
}

// Update godoc
// @Summary      Update a knowledge entry
// @Description  Only the fields present in the body are changed
// @Tags         knowledges
// @Accept       json
// @Produce      json
// @Param        id     path      string  true  "Knowledge ID"
// @Param        body   body      domain.KnowledgeUpdate  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Knowledge}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /knowledges/{id} [put]
// @Security     BearerAuth
func (h *KnowledgeHandler) Update(c *gin.Context) {
	h.crud.Update(c)
}

// Delete godoc
// @Summary      Delete a knowledge entry
// @Tags         knowledges
// @Produce      json
// @Param        id     path      string  true  "Knowledge ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /knowledges/{id} [delete]
// @Security     BearerAuth
func (h *KnowledgeHandler) Delete(c *gin.Context) {
	h.crud.Delete(c)
}
