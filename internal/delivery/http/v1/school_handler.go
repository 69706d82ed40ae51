package v1

import (
	"cv-manager-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SchoolHandler struct {
	crud *CrudHandler[domain.School, domain.SchoolCreate, domain.SchoolUpdate]
}

func NewSchoolHandler(protected *gin.RouterGroup, schoolUC domain.CrudUsecase[domain.School, domain.SchoolCreate, domain.SchoolUpdate]) {
	handler := &SchoolHandler{crud: NewCrudHandler(schoolUC, "School")}

	schools := protected.Group("/schools")
	{
		schools.GET("", handler.List)
		schools.POST("", handler.Create)
		schools.GET("/:id", handler.Get)
		schools.PUT("/:id", handler.Update)
		schools.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List schools
// @Tags         schools
// @Produce      json
// @Param        skip   query     int     false  "Rows to skip"  default(0)
// @Param        limit  query     int     false  "Page size (max 1000)"  default(100)
// @Success      200  {object}  response.Response{data=[]domain.School}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /schools [get]
// @Security     BearerAuth
func (h *SchoolHandler) List(c *gin.Context) {
	h.crud.List(c)
}

// Create godoc
// @Summary      Create a school
// @Description  Fails with 404 when the referenced CV does not exist
// @Tags         schools
// @Accept       json
// @Produce      json
// @Param        body   body      domain.SchoolCreate  true  "School to create"
// @Success      201  {object}  response.Response{data=domain.School}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response  "CV not found"
// @Failure      422  {object}  response.Response
// @Router       /schools [post]
// @Security     BearerAuth
func (h *SchoolHandler) Create(c *gin.Context) {
	h.crud.Create(c)
}

// Get godoc
// @Summary      Get a school
// @Tags         schools
// @Produce      json
// @Param        id     path      string  true  "School ID"
// @Success      200  {object}  response.Response{data=domain.School}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /schools/{id} [get]
// @Security     BearerAuth
func (h *SchoolHandler) Get(c *gin.Context) {
	h.crud.Get(c)
}

// Update godoc
// @Summary      Update a school
// @Description  Only the fields present in the body are changed
// @Tags         schools
// @Accept       json
// @Produce      json
// @Param        id     path      string  true  "School ID"
// @Param        body   body      domain.SchoolUpdate  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.School}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /schools/{id} [put]
// @Security     BearerAuth
func (h *SchoolHandler) Update(c *gin.Context) {
	h.crud.Update(c)
}

// Delete godoc
// @Summary      Delete a school
// @Tags         schools
// @Produce      json
// @Param        id     path      string  true  "School ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /schools/{id} [delete]
// @Security     BearerAuth
func (h *SchoolHandler) Delete(c *gin.Context) {
	h.crud.Delete(c)
}
