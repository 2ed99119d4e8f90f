package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet_manager/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(jwtUtil *utils.JWTUtil) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuthMiddleware(jwtUtil), func(c *gin.Context) {
		userID := c.GetInt(AuthUserKey)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	router := setupRouter(utils.NewJWTUtil("secret", 24))

	w := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(401), body["code"])
	assert.Equal(t, "authorization header required", body["message"])
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	router := setupRouter(utils.NewJWTUtil("secret", 24))

	for _, header := range []string{"sometoken", "Basic abc def"} {
		w := doRequest(router, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "invalid authorization header format", body["message"])
	}
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	router := setupRouter(utils.NewJWTUtil("secret", 24))

	w := doRequest(router, "Bearer not.a.token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 24)
	expired := utils.NewJWTUtil("secret", -1)
	token, _ := expired.GenerateToken(7, "user")
	router := setupRouter(jwtUtil)

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 24)
	token, _ := jwtUtil.GenerateToken(7, "user")
	router := setupRouter(jwtUtil)

	// Scheme casing is not significant
	for _, header := range []string{"Bearer " + token, "bearer " + token} {
		w := doRequest(router, header)
		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(7), body["user_id"])
	}
}
