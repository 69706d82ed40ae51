package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cv-manager-backend/internal/domain"
	"cv-manager-backend/pkg/apperror"
	"cv-manager-backend/pkg/auth"
	"cv-manager-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_InMemory(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(GlobalRateLimitConfig(2, time.Minute)))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestMemoryCounter_WindowResets(t *testing.T) {
	m := newMemoryCounter()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	count, _ := m.incr("k", time.Minute, now)
	assert.Equal(t, 1, count)
	count, _ = m.incr("k", time.Minute, now.Add(30*time.Second))
	assert.Equal(t, 2, count)
	count, _ = m.incr("k", time.Minute, now.Add(2*time.Minute))
	assert.Equal(t, 1, count)
	count, _ = m.incr("other", time.Minute, now)
	assert.Equal(t, 1, count)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/validation", func(c *gin.Context) {
		c.Error(apperror.Validation("Validation failed", []validation.FieldError{{Field: "name", Message: "field required"}}))
	})
	r.GET("/internal", func(c *gin.Context) {
		c.Error(errors.New("connection reset by peer"))
	})
	r.GET("/unavailable", func(c *gin.Context) {
		c.Error(apperror.ServiceUnavailable("Photo storage is not configured"))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/validation", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"name"`)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/internal", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")

	w = serve(r, httptest.NewRequest(http.MethodGet, "/unavailable", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Photo storage is not configured")
}

type stubAuth struct {
	domain.AuthUsecase
	users map[uuid.UUID]*domain.User
}

func (s stubAuth) GetCurrentUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, apperror.Unauthorized("User not found")
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	user := &domain.User{ID: uuid.New(), Email: "a@example.com", IsActive: true}
	admin := &domain.User{ID: uuid.New(), Email: "root@example.com", IsActive: true, IsSuperuser: true}
	authUC := stubAuth{users: map[uuid.UUID]*domain.User{user.ID: user, admin.ID: admin}}

	r := gin.New()
	protected := r.Group("", AuthMiddleware(tokens, authUC))
	protected.GET("/me", func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		require.True(t, ok)
		fromCtx, _ := c.Request.Context().Value(domain.KeyUserID).(uuid.UUID)
		assert.Equal(t, id, fromCtx)
		c.String(http.StatusOK, id.String())
	})
	protected.GET("/admin", RequireSuperuser(), func(c *gin.Context) { c.Status(http.StatusOK) })

	token, err := tokens.Generate(user.ID, user.Email)
	require.NoError(t, err)
	adminToken, err := tokens.Generate(admin.ID, admin.Email)
	require.NoError(t, err)
	stranger, err := tokens.Generate(uuid.New(), "ghost@example.com")
	require.NoError(t, err)

	request := func(path, header string, cookie string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", "Bearer "+header)
		}
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: "auth_token", Value: cookie})
		}
		return serve(r, req)
	}

	w := request("/me", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.ID.String(), w.Body.String())

	assert.Equal(t, http.StatusOK, request("/me", "", token).Code, "cookie")
	assert.Equal(t, http.StatusUnauthorized, request("/me", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, request("/me", "not-a-jwt", "").Code)
	assert.Equal(t, http.StatusUnauthorized, request("/me", stranger, "").Code)

	assert.Equal(t, http.StatusForbidden, request("/admin", token, "").Code)
	assert.Equal(t, http.StatusOK, request("/admin", adminToken, "").Code)
}
