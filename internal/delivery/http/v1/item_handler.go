package v1

import (
	"cv-manager-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	crud *CrudHandler[domain.Item, domain.ItemCreate, domain.ItemUpdate]
}

func NewItemHandler(protected *gin.RouterGroup, itemUC domain.CrudUsecase[domain.Item, domain.ItemCreate, domain.ItemUpdate]) {
	handler := &ItemHandler{crud: NewCrudHandler(itemUC, "Item", WithCount())}

	items := protected.Group("/items")
	{
		items.GET("", handler.List)
		items.POST("", handler.Create)
		items.GET("/:id", handler.Get)
		items.PUT("/:id", handler.Update)
		items.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List items
// @Description  Paginated, with the total number of items
// @Tags         items
// @Produce      json
// @Param        skip   query     int     false  "Rows to skip"  default(0)
// @Param        limit  query     int     false  "Page size (max 1000)"  default(100)
// @Success      200  {object}  response.Response{data=response.Page[domain.Item]}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /items [get]
// @Security     BearerAuth
func (h *ItemHandler) List(c *gin.Context) {
	h.crud.List(c)
}

// Create godoc
// @Summary      Create an item
// @Description  The authenticated user becomes the owner
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body   body      domain.ItemCreate  true  "Item to create"
// @Success      201  {object}  response.Response{data=domain.Item}
// @Failure      401  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /items [post]
// @Security     BearerAuth
func (h *ItemHandler) Create(c *gin.Context) {
	h.crud.Create(c)
}

// Get godoc
// @Summary      Get an item
// @Tags         items
// @Produce      json
// @Param        id     path      string  true  "Item ID"
// @Success      200  {object}  response.Response{data=domain.Item}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /items/{id} [get]
// @Security     BearerAuth
func (h *ItemHandler) Get(c *gin.Context) {
	h.crud.Get(c)
}

// Update godoc
// @Summary      Update an item
// @Description  Only the fields present in the body are changed
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id     path      string  true  "Item ID"
// @Param        body   body      domain.ItemUpdate  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Item}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /items/{id} [put]
// @Security     BearerAuth
func (h *ItemHandler) Update(c *gin.Context) {
	h.crud.Update(c)
}

// Delete godoc
// @Summary      Delete an item
// @Tags         items
// @Produce      json
// @Param        id     path      string  true  "Item ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /items/{id} [delete]
// @Security     BearerAuth
func (h *ItemHandler) Delete(c *gin.Context) {
	h.crud.Delete(c)
}
