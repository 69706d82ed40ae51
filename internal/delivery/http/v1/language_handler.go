package v1

import (
	"cv-manager-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type LanguageHandler struct {
	crud *CrudHandler[domain.Language, domain.LanguageCreate, domain.LanguageUpdate]
}

func NewLanguageHandler(protected *gin.RouterGroup, languageUC domain.CrudUsecase[domain.Language, domain.LanguageCreate, domain.LanguageUpdate]) {
	handler := &LanguageHandler{crud: NewCrudHandler(languageUC, "Language")}

	languages := protected.Group("/languages")
	{
		languages.GET("", handler.List)
		languages.POST("", handler.Create)
		languages.GET("/:id", handler.Get)
		languages.PUT("/:id", handler.Update)
		languages.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List languages
// @Tags         languages
// @Produce      json
// @Param        skip   query     int     false  "Rows to skip"  default(0)
// @Param        limit  query     int     false  "Page size (max 1000)"  default(100)
// @Success      200  {object}  response.Response{data=[]domain.Language}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /languages [get]
// @Security     BearerAuth
func (h *LanguageHandler) List(c *gin.Context) {
	h.crud.List(c)
}

// Create godoc
// @Summary      Create a language
// @Tags         languages
// @Accept       json
// @Produce      json
// @Param        body   body      domain.LanguageCreate  true  "Language to create"
// @Success      201  {object}  response.Response{data=domain.Language}
// @Failure      401  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /languages [post]
// @Security     BearerAuth
func (h *LanguageHandler) Create(c *gin.Context) {
	h.crud.Create(c)
}

// Get godoc
// @Summary      Get a language
// @Tags         languages
// @Produce      json
// @Param        id     path      string  true  "Language ID"
// @Success      200  {object}  response.Response{data=domain.Language}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /languages/{id} [get]
// @Security     BearerAuth
func (h *LanguageHandler) Get(c *gin.Context) {
	h.crud.Get(c)
}

// Update godoc
// @Summary      Update a language
// @Description  Only the fields present in the body are changed
// @Tags         languages
// @Accept       json
// @Produce      json
// @Param        id     path      string  true  "Language ID"
// @Param        body   body      domain.LanguageUpdate  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Language}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /languages/{id} [put]
// @Security     BearerAuth
func (h *LanguageHandler) Update(c *gin.Context) {
	h.crud.Update(c)
}

// Delete godoc
// @Summary      Delete a language
// @Tags         languages
// @Produce      json
// @Param        id     path      string  true  "Language ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /languages/{id} [delete]
// @Security     BearerAuth
func (h *LanguageHandler) Delete(c *gin.Context) {
	h.crud.Delete(c)
}
