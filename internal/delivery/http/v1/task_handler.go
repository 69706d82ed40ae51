package v1

import (
	"cv-manager-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	crud *CrudHandler[domain.Task, domain.TaskCreate, domain.TaskUpdate]
}

func NewTaskHandler(protected *gin.RouterGroup, taskUC domain.CrudUsecase[domain.Task, domain.TaskCreate, domain.TaskUpdate]) {
	handler := &TaskHandler{crud: NewCrudHandler(taskUC, "Task")}

	tasks := protected.Group("/tasks")
	{
		tasks.GET("", handler.List)
		tasks.POST("", handler.Create)
		tasks.GET("/:id", handler.Get)
		tasks.PUT("/:id", handler.Update)
		tasks.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Param        skip   query     int     false  "Rows to skip"  default(0)
// @Param        limit  query     int     false  "Page size (max 1000)"  default(100)
// @Success      200  {object}  response.Response{data=[]domain.Task}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /tasks [get]
// @Security     BearerAuth
func (h *TaskHandler) List(c *gin.Context) {
	h.crud.List(c)
}

// Create godoc
// @Summary      Create a task
// @Description  Fails with 404 when the referenced Job does not exist
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body   body      domain.TaskCreate  true  "Task to create"
// @Success      201  {object}  response.Response{data=domain.Task}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response  "Job not found"
// @Failure      422  {object}  response.Response
// @Router       /tasks [post]
// @Security     BearerAuth
func (h *TaskHandler) Create(c *gin.Context) {
	h.crud.Create(c)
}

// Get godoc
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Param        id     path      string  true  "Task ID"
// @Success      200  {object}  response.Response{data=domain.Task}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tasks/{id} [get]
// @Security     BearerAuth
func (h *TaskHandler) Get(c *gin.Context) {
	h.crud.Get(c)
}

// Update godoc
// @Summary      Update a task
// @Description  Only the fields present in the body are changed
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id     path      string  true  "Task ID"
// @Param        body   body      domain.TaskUpdate  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Task}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /tasks/{id} [put]
// @Security     BearerAuth
func (h *TaskHandler) Update(c *gin.Context) {
	h.crud.Update(c)
}

// Delete godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id     path      string  true  "Task ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response  "Still referenced by skills"
// @Router       /tasks/{id} [delete]
// @Security     BearerAuth
func (h *TaskHandler) Delete(c *gin.Context) {
	h.crud.Delete(c)
}
