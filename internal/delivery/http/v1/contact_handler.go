package v1

import (
	"cv-manager-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	crud *CrudHandler[domain.Contact, domain.ContactCreate, domain.ContactUpdate]
}

func NewContactHandler(protected *gin.RouterGroup, contactUC domain.ContactUsecase, uploadLimit gin.HandlerFunc) {
	handler := &ContactHandler{crud: NewCrudHandler[domain.Contact, domain.ContactCreate, domain.ContactUpdate](contactUC, "Contact")}

	contacts := protected.Group("/contacts")
	{
		contacts.GET("", handler.List)
		contacts.POST("", handler.Create)
		contacts.GET("/:id", handler.Get)
		contacts.PUT("/:id", handler.Update)
		contacts.DELETE("/:id", handler.Delete)
	}

	NewContactPhotoHandler(contacts, contactUC, uploadLimit)
}

// List godoc
// @Summary      List contacts
// @Tags         contacts
// @Produce      json
// @Param        skip   query     int     false  "Rows to skip"  default(0)
// @Param        limit  query     int     false  "Page size (max 1000)"  default(100)
// @Success      200  {object}  response.Response{data=[]domain.Contact}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /contacts [get]
// @Security     BearerAuth
func (h *ContactHandler) List(c *gin.Context) {
	h.crud.List(c)
}

// Create godoc
// @Summary      Create a contact
// @Description  Fails with 404 when the referenced CV does not exist
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body   body      domain.ContactCreate  true  "Contact to create"
// @Success      201  {object}  response.Response{data=domain.Contact}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response  "CV not found"
// @Failure      409  {object}  response.Response  "CV already has a contact"
// @Failure      422  {object}  response.Response
// @Router       /contacts [post]
// @Security     BearerAuth
func (h *ContactHandler) Create(c *gin.Context) {
	h.crud.Create(c)
}

// Get godoc
// @Summary      Get a contact
// @Tags         contacts
// @Produce      json
// @Param        id     path      string  true  "Contact ID"
// @Success      200  {object}  response.Response{data=domain.Contact}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contacts/{id} [get]
// @Security     BearerAuth
func (h *ContactHandler) Get(c *gin.Context) {
	h.crud.Get(c)
}

// Update godoc
// @Summary      Update a contact
// @Description  Only the fields present in the body are changed
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id     path      string  true  "Contact ID"
// @Param        body   body      domain.ContactUpdate  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Contact}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /contacts/{id} [put]
// @Security     BearerAuth
func (h *ContactHandler) Update(c *gin.Context) {
	h.crud.Update(c)
}

// Delete godoc
// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Param        id     path      string  true  "Contact ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contacts/{id} [delete]
// @Security     BearerAuth
func (h *ContactHandler) Delete(c *gin.Context) {
	h.crud.Delete(c)
}
