package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"cv-manager-backend/internal/delivery/http/response"
	"cv-manager-backend/internal/domain"
	"cv-manager-backend/pkg/apperror"
	"cv-manager-backend/pkg/auth"
	"cv-manager-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenParser resolves an access token to the user id it was issued for.
type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

func AuthMiddleware(tokens TokenParser, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		userID, err := tokens.Parse(tokenString)
		if err != nil {
			msg := "Could not validate credentials"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "Token expired"
			}
			response.Error(c, http.StatusUnauthorized, msg, nil)
			c.Abort()
			return
		}

		// Always load the user so deactivation takes effect immediately
		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("failed to load current user", "user_id", userID, "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyIsSuperuser), user.IsSuperuser)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, user.Email)
		ctx = context.WithValue(ctx, domain.KeyIsSuperuser, user.IsSuperuser)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireSuperuser must run after AuthMiddleware.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(string(domain.KeyIsSuperuser)) {
			response.Error(c, http.StatusForbidden, "The user doesn't have enough privileges", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the caller set by AuthMiddleware.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(string(domain.KeyUserID))
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}
