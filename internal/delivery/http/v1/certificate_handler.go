package v1

import (
	"cv-manager-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CertificateHandler struct {
	crud *CrudHandler[domain.Certificate, domain.CertificateCreate, domain.CertificateUpdate]
}

func NewCertificateHandler(protected *gin.RouterGroup, certificateUC domain.CrudUsecase[domain.Certificate, domain.CertificateCreate, domain.CertificateUpdate]) {
	handler := &CertificateHandler{crud: NewCrudHandler(certificateUC, "Certificate")}

	certificates := protected.Group("/certificates")
	{
		certificates.GET("", handler.List)
		certificates.POST("", handler.Create)
		certificates.GET("/:id", handler.Get)
		certificates.PUT("/:id", handler.Update)
		certificates.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List certificates
// @Tags         certificates
// @Produce      json
// @Param        skip   query     int     false  "Rows to skip"  default(0)
// @Param        limit  query     int     false  "Page size (max 1000)"  default(100)
// @Success      200  {object}  response.Response{data=[]domain.Certificate}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /certificates [get]
// @Security     BearerAuth
func (h *CertificateHandler) List(c *gin.Context) {
	h.crud.List(c)
}

// Create godoc
// @Summary      Create a certificate
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Param        body   body      domain.CertificateCreate  true  "Certificate to create"
// @Success      201  {object}  response.Response{data=domain.Certificate}
// @Failure      401  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /certificates [post]
// @Security     BearerAuth
func (h *CertificateHandler) Create(c *gin.Context) {
	h.crud.Create(c)
}

// Get godoc
// @Summary      Get a certificate
// @Tags         certificates
// @Produce      json
// @Param        id     path      string  true  "Certificate ID"
// @Success      200  {object}  response.Response{data=domain.Certificate}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /certificates/{id} [get]
// @Security     BearerAuth
func (h *CertificateHandler) Get(c *gin.Context) {
	h.crud.Get(c)
}

// Update godoc
// @Summary      Update a certificate
// @Description  Only the fields present in the body are changed
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Param        id     path      string  true  "Certificate ID"
// @Param        body   body      domain.CertificateUpdate  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Certificate}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /certificates/{id} [put]
// @Security     BearerAuth
func (h *CertificateHandler) Update(c *gin.Context) {
	h.crud.Update(c)
}

// Delete godoc
// @Summary      Delete a certificate
// @Tags         certificates
// @Produce      json
// @Param        id     path      string  true  "Certificate ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /certificates/{id} [delete]
// @Security     BearerAuth
func (h *CertificateHandler) Delete(c *gin.Context) {
	h.crud.Delete(c)
}
