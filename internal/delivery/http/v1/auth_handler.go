package v1

import (
	"net/http"

	"cv-manager-backend/internal/delivery/http/middleware"
	"cv-manager-backend/internal/delivery/http/response"
	"cv-manager-backend/internal/domain"
	"cv-manager-backend/pkg/apperror"
	"cv-manager-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC       domain.AuthUsecase
	cookieMaxAge int
	secureCookie bool
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, tokenMinutes int, loginLimit gin.HandlerFunc) {
	handler := &AuthHandler{
		authUC:       authUC,
		cookieMaxAge: tokenMinutes * 60,
		secureCookie: gin.Mode() == gin.ReleaseMode,
	}

	public.POST("/login/access-token", loginLimit, handler.Login)
	public.POST("/logout", handler.Logout)
	protected.POST("/login/test-token", handler.TestToken)
}

// Login godoc
// @Summary      Log in
// @Description  Exchange email and password for a bearer access token. Accepts an OAuth2 password form or JSON.
// @Tags         login
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        username  formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  response.Response{data=domain.Token}
// @Failure      400  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /login/access-token [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.Validation("Invalid request body", validation.FormatBindingError(err)))
		return
	}

	token, err := h.authUC.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token.AccessToken, h.cookieMaxAge, "/", "", h.secureCookie, true)
	response.Success(c, http.StatusOK, "Login successful", token)
}

// Logout godoc
// @Summary      Log out
// @Description  Clear the auth_token cookie
// @Tags         login
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", "", -1, "/", "", h.secureCookie, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// TestToken godoc
// @Summary      Test access token
// @Tags         login
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /login/test-token [post]
// @Security     BearerAuth
func (h *AuthHandler) TestToken(c *gin.Context) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Token is valid", user)
}
