package v1

import (
	"net/http"

	"cv-manager-backend/internal/delivery/http/middleware"
	"cv-manager-backend/internal/delivery/http/response"
	"cv-manager-backend/internal/domain"
	"cv-manager-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
	crud   *CrudHandler[domain.User, domain.UserCreate, domain.UserUpdate]
}

func NewUserHandler(public, protected, admin *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{
		userUC: userUC,
		crud:   NewCrudHandler[domain.User, domain.UserCreate, domain.UserUpdate](userUC, "User", WithCount()),
	}

	public.POST("/users/signup", handler.Signup)

	me := protected.Group("/users/me")
	{
		me.GET("", handler.Me)
		me.PATCH("", handler.UpdateMe)
		me.DELETE("", handler.DeleteMe)
		me.PATCH("/password", handler.UpdatePassword)
	}

	users := admin.Group("/users")
	{
		users.GET("", handler.List)
		users.POST("", handler.Create)
		users.GET("/:id", handler.Get)
		users.PATCH("/:id", handler.Update)
		users.DELETE("/:id", handler.Delete)
	}
}

// Signup godoc
// @Summary      Register
// @Description  Create a regular account without logging in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      domain.UserRegister  true  "Account"
// @Success      201   {object}  response.Response{data=domain.User}
// @Failure      409   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /users/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var in domain.UserRegister
	if err := bindJSON(c, &in); err != nil {
		c.Error(err)
		return
	}

	user, err := h.userUC.Register(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "User created", user)
}

// Me godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) Me(c *gin.Context) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	user, err := h.userUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User details", user)
}

// UpdateMe godoc
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      domain.UserUpdateMe  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.User}
// @Failure      409   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /users/me [patch]
// @Security     BearerAuth
func (h *UserHandler) UpdateMe(c *gin.Context) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var in domain.UserUpdateMe
	if err := bindJSON(c, &in); err != nil {
		c.Error(err)
		return
	}

	user, err := h.userUC.UpdateMe(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

// UpdatePassword godoc
// @Summary      Change own password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        passwords  body      domain.UpdatePassword  true  "Current and new password"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Router       /users/me/password [patch]
// @Security     BearerAuth
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var in domain.UpdatePassword
	if err := bindJSON(c, &in); err != nil {
		c.Error(err)
		return
	}

	if err := h.userUC.UpdatePassword(c.Request.Context(), id, in); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password updated successfully", nil)
}

// DeleteMe godoc
// @Summary      Delete own account
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /users/me [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteMe(c *gin.Context) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	if c.GetBool(string(domain.KeyIsSuperuser)) {
		c.Error(apperror.Forbidden("Super users are not allowed to delete themselves"))
		return
	}

	if err := h.userUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}

// List godoc
// @Summary      List users
// @Description  Superuser only
// @Tags         users
// @Produce      json
// @Param        skip   query     int  false  "Rows to skip"  default(0)
// @Param        limit  query     int  false  "Page size (max 1000)"  default(100)
// @Success      200    {object}  response.Response{data=response.Page[domain.User]}
// @Failure      400    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) List(c *gin.Context) {
	h.crud.List(c)
}

// Create godoc
// @Summary      Create a user
// @Description  Superuser only
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      domain.UserCreate  true  "User"
// @Success      201   {object}  response.Response{data=domain.User}
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /users [post]
// @Security     BearerAuth
func (h *UserHandler) Create(c *gin.Context) {
	h.crud.Create(c)
}

// Get godoc
// @Summary      Get a user
// @Description  Superuser only
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) Get(c *gin.Context) {
	h.crud.Get(c)
}

// Update godoc
// @Summary      Update a user
// @Description  Superuser only. Only the fields present in the body are changed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User ID"
// @Param        user  body      domain.UserUpdate  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.User}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /users/{id} [patch]
// @Security     BearerAuth
func (h *UserHandler) Update(c *gin.Context) {
	h.crud.Update(c)
}

// Delete godoc
// @Summary      Delete a user
// @Description  Superuser only. Removes the user's items as well.
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if self, ok := middleware.CurrentUserID(c); ok && self == id {
		c.Error(apperror.Forbidden("Super users are not allowed to delete themselves"))
		return
	}

	h.crud.Delete(c)
}
