package v1

import (
	"cv-manager-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	crud *CrudHandler[domain.Skill, domain.SkillCreate, domain.SkillUpdate]
}

func NewSkillHandler(protected *gin.RouterGroup, skillUC domain.CrudUsecase[domain.Skill, domain.SkillCreate, domain.SkillUpdate]) {
	handler := &SkillHandler{crud: NewCrudHandler(skillUC, "Skill")}

	skills := protected.Group("/skills")
	{
		skills.GET("", handler.List)
		skills.POST("", handler.Create)
		skills.GET("/:id", handler.Get)
		skills.PUT("/:id", handler.Update)
		skills.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List skills
// @Tags         skills
// @Produce      json
// @Param        skip   query     int     false  "Rows to skip"  default(0)
// @Param        limit  query     int     false  "Page size (max 1000)"  default(100)
// @Success      200  {object}  response.Response{data=[]domain.Skill}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /skills [get]
// @Security     BearerAuth
func (h *SkillHandler) List(c *gin.Context) {
	h.crud.List(c)
}

// Create godoc
// @Summary      Create a skill
// @Description  Fails with 404 when the referenced Task does not exist
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        body   body      domain.SkillCreate  true  "Skill to create"
// @Success      201  {object}  response.Response{data=domain.Skill}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response  "Task not found"
// @Failure      422  {object}  response.Response
// @Router       /skills [post]
// @Security     BearerAuth
func (h *SkillHandler) Create(c *gin.Context) {
	h.crud.Create(c)
}

// Get godoc
// @Summary      Get a skill
// @Tags         skills
// @Produce      json
// @Param        id     path      string  true  "Skill ID"
// @Success      200  {object}  response.Response{data=domain.Skill}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [get]
// @Security     BearerAuth
func (h *SkillHandler) Get(c *gin.Context) {
	h.crud.Get(c)
}

// Update godoc
// @Summary      Update a skill
// @Description  Only the fields present in the body are changed
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id     path      string  true  "Skill ID"
// @Param        body   body      domain.SkillUpdate  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Skill}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /skills/{id} [put]
// @Security     BearerAuth
func (h *SkillHandler) Update(c *gin.Context) {
	h.crud.Update(c)
}

// Delete godoc
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Param        id     path      string  true  "Skill ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [delete]
// @Security     BearerAuth
func (h *SkillHandler) Delete(c *gin.Context) {
	h.crud.Delete(c)
}
