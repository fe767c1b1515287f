package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"exam-service/internal/models"
)

func setupRouter(auth *Auth, roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", auth.RequireAuth())
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	auth := NewAuth("test-secret")
	r := setupRouter(auth)

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid bearer token", func(t *testing.T) {
		token, err := auth.GenerateToken(&models.User{ID: "u1", Role: models.RoleStudent}, time.Hour)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "u1")
	})

	t.Run("valid cookie token", func(t *testing.T) {
		token, _ := auth.GenerateToken(&models.User{ID: "u2", Role: models.RoleStudent}, time.Hour)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, _ := auth.GenerateToken(&models.User{ID: "u3", Role: models.RoleStudent}, -time.Hour)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuth("other-secret")
		token, _ := other.GenerateToken(&models.User{ID: "u4", Role: models.RoleStudent}, time.Hour)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	auth := NewAuth("test-secret")
	r := setupRouter(auth, models.RoleInstructor, models.RoleAdmin)

	testCases := []struct {
		role models.Role
		want int
	}{
		{models.RoleInstructor, http.StatusOK},
		{models.RoleAdmin, http.StatusOK},
		{models.RoleStudent, http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role), func(t *testing.T) {
			token, _ := auth.GenerateToken(&models.User{ID: "u", Role: tc.role}, time.Hour)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, models.RoleInstructor.CanAuthor())
	assert.True(t, models.RoleAdmin.CanGrade())
	assert.False(t, models.RoleStudent.CanAuthor())
	assert.False(t, models.RoleStudent.CanGrade())

	_, err := models.ParseRole("superuser")
	assert.Error(t, err)
}
