package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"dreamjournal-be/internal/jwt"
)

func newProtectedRouter(t *testing.T) (*gin.Engine, *jwt.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService, err := jwt.NewJWTService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("jwt service: %v", err)
	}

	router := gin.New()
	router.GET("/protected", AuthMiddleware(jwtService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID)})
	})
	return router, jwtService
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	router, _ := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", res.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
	if _, leaked := body["data"]; leaked {
		t.Fatalf("401 response must not carry data")
	}
}

func TestAuthMiddleware_BearerHeader(t *testing.T) {
	router, jwtService := newProtectedRouter(t)

	token, err := jwtService.GenerateToken("u1", "u1@test.local")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["user_id"] != "u1" {
		t.Fatalf("expected user_id u1, got %q", body["user_id"])
	}
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	router, jwtService := newProtectedRouter(t)

	token, err := jwtService.GenerateToken("u2", "u2@test.local")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}
}

func TestAuthMiddleware_InvalidAndExpiredLookAlike(t *testing.T) {
	router, _ := newProtectedRouter(t)

	expiredService, err := jwt.NewJWTService("test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("jwt service: %v", err)
	}
	expired, err := expiredService.GenerateToken("u3", "u3@test.local")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	bodies := map[string]string{}
	for name, token := range map[string]string{"garbage": "not-a-token", "expired": expired} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)

		if res.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected status 401, got %d", name, res.Code)
		}
		bodies[name] = res.Body.String()
	}

	// The caller cannot tell an expired token from a tampered one
	if bodies["garbage"] != bodies["expired"] {
		t.Fatalf("expected identical bodies, got %q vs %q", bodies["garbage"], bodies["expired"])
	}
}
