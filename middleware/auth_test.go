package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/constants"
	"backoffice/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetUint("userID"),
			"userRole": c.GetString("userRole"),
		})
	})
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")
	router := setupRouter()

	w := doRequest(router, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")
	router := setupRouter()

	w := doRequest(router, "garbage")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRoleForbidden(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")
	router := setupRouter(constants.RoleAdmin)

	token, err := services.GenerateToken(services.UserInfo{UserID: 5, Role: constants.RoleEmployee}, 60)
	require.NoError(t, err)

	w := doRequest(router, token)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")
	router := setupRouter(constants.RoleAdmin, constants.RoleEmployee)

	token, err := services.GenerateToken(services.UserInfo{UserID: 5, Role: constants.RoleEmployee}, 60)
	require.NoError(t, err)

	w := doRequest(router, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"userID":5`)
	require.Contains(t, w.Body.String(), `"userRole":"employee"`)
}
