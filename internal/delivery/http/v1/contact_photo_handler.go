package v1

import (
	"errors"
	"io"
	"net/http"

	"cv-manager-backend/internal/delivery/http/response"
	"cv-manager-backend/internal/domain"
	"cv-manager-backend/pkg/apperror"
	"cv-manager-backend/pkg/imaging"
	"cv-manager-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

const maxPhotoBytes = 5 << 20

type ContactPhotoHandler struct {
	contactUC domain.ContactUsecase
}

func NewContactPhotoHandler(contacts *gin.RouterGroup, contactUC domain.ContactUsecase, uploadLimit gin.HandlerFunc) {
	handler := &ContactPhotoHandler{contactUC: contactUC}
	contacts.POST("/:id/photo", uploadLimit, handler.Upload)
}

// Upload godoc
// @Summary      Upload contact photo
// @Description  Store an image (scaled to at most 1200px, re-encoded as JPEG) and set it as the contact's photo
// @Tags         contacts
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Contact ID"
// @Param        file  formData  file    true  "Image file (max 5MB)"
// @Success      200   {object}  response.Response{data=domain.Contact}
// @Failure      404   {object}  response.Response
// @Failure      413   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Failure      503   {object}  response.Response
// @Router       /contacts/{id}/photo [post]
// @Security     BearerAuth
func (h *ContactPhotoHandler) Upload(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBytes+1024)
	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.New(http.StatusRequestEntityTooLarge, "File too large (max 5MB)", nil))
			return
		}
		c.Error(apperror.Validation("Invalid upload", []validation.FieldError{{Field: "file", Message: "field required"}}))
		return
	}
	if err := imaging.CheckExtension(file.Filename); err != nil {
		c.Error(apperror.Validation("Invalid upload", []validation.FieldError{{Field: "file", Message: "must be a .jpg, .png, .gif or .webp file"}}))
		return
	}
	if file.Size > maxPhotoBytes {
		c.Error(apperror.New(http.StatusRequestEntityTooLarge, "File too large (max 5MB)", nil))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	contact, err := h.contactUC.UploadPhoto(c.Request.Context(), id, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Photo uploaded", contact)
}
