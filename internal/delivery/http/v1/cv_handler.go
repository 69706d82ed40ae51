package v1

import (
	"cv-manager-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CVHandler struct {
	crud *CrudHandler[domain.CV, domain.CVCreate, domain.CVUpdate]
}

func NewCVHandler(protected *gin.RouterGroup, cvUC domain.CrudUsecase[domain.CV, domain.CVCreate, domain.CVUpdate]) {
	handler := &CVHandler{crud: NewCrudHandler(cvUC, "CV", WithCount())}

	cvs := protected.Group("/cvs")
	{
		cvs.GET("", handler.List)
		cvs.POST("", handler.Create)
		cvs.GET("/:id", handler.Get)
		cvs.PUT("/:id", handler.Update)
		cvs.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List CVs
// @Description  Paginated, with the total number of CVs
// @Tags         cvs
// @Produce      json
// @Param        skip   query     int     false  "Rows to skip"  default(0)
// @Param        limit  query     int     false  "Page size (max 1000)"  default(100)
// @Success      200  {object}  response.Response{data=response.Page[domain.CV]}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /cvs [get]
// @Security     BearerAuth
func (h *CVHandler) List(c *gin.Context) {
	h.crud.List(c)
}

// Create godoc
// @Summary      Create a CV
// @Tags         cvs
// @Accept       json
// @Produce      json
// @Param        body   body      domain.CVCreate  true  "CV to create"
// @Success      201  {object}  response.Response{data=domain.CV}
// @Failure      401  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /cvs [post]
// @Security     BearerAuth
func (h *CVHandler) Create(c *gin.Context) {
	h.crud.Create(c)
}

// Get godoc
// @Summary      Get a CV
// @Tags         cvs
// @Produce      json
// @Param        id     path      string  true  "CV ID"
// @Success      200  {object}  response.Response{data=domain.CV}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /cvs/{id} [get]
// @Security     BearerAuth
func (h *CVHandler) Get(c *gin.Context) {
	h.crud.Get(c)
}

// Update godoc
// @Summary      Update a CV
// @Description  Only the fields present in the body are changed
// @Tags         cvs
// @Accept       json
// @Produce      json
// @Param        id     path      string  true  "CV ID"
// @Param        body   body      domain.CVUpdate  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.CV}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /cvs/{id} [put]
// @Security     BearerAuth
func (h *CVHandler) Update(c *gin.Context) {
	h.crud.Update(c)
}

// Delete godoc
// @Summary      Delete a CV
// @Tags         cvs
// @Produce      json
// @Param        id     path      string  true  "CV ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response  "Still referenced by jobs, schools or a contact"
// @Router       /cvs/{id} [delete]
// @Security     BearerAuth
func (h *CVHandler) Delete(c *gin.Context) {
	h.crud.Delete(c)
}
