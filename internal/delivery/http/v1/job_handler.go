package v1

import (
	"cv-manager-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	crud *CrudHandler[domain.Job, domain.JobCreate, domain.JobUpdate]
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.CrudUsecase[domain.Job, domain.JobCreate, domain.JobUpdate]) {
	handler := &JobHandler{crud: NewCrudHandler(jobUC, "Job")}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.GET("/:id", handler.Get)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Param        skip   query     int     false  "Rows to skip"  default(0)
// @Param        limit  query     int     false  "Page size (max 1000)"  default(100)
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	h.crud.List(c)
}

// Create godoc
// @Summary      Create a job
// @Description  Fails with 404 when the referenced CV does not exist
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body   body      domain.JobCreate  true  "Job to create"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response  "CV not found"
// @Failure      422  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	h.crud.Create(c)
}

// Get godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id     path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) Get(c *gin.Context) {
	h.crud.Get(c)
}

// Update godoc
// @Summary      Update a job
// @Description  Only the fields present in the body are changed
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id     path      string  true  "Job ID"
// @Param        body   body      domain.JobUpdate  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	h.crud.Update(c)
}

// Delete godoc
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id     path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response  "Still referenced by tasks"
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	h.crud.Delete(c)
}
