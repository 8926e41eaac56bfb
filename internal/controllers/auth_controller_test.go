package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamjournal-be/internal/apperrors"
	"dreamjournal-be/internal/models"
)

type stubAuthService struct {
	resp *models.AuthResponse
	user *models.UserView
	err  error
}

func (s *stubAuthService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	return s.resp, s.err
}
func (s *stubAuthService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	return s.resp, s.err
}
func (s *stubAuthService) GetMe(userID string) (*models.UserView, error) {
	return s.user, s.err
}

func newAuthRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ac := NewAuthController(svc)

	router := gin.New()
	router.POST("/auth/register", ac.Register)
	router.POST("/auth/login", ac.Login)
	router.GET("/auth/me", fakeIdentity("u1"), ac.Me)
	return router
}

func TestRegister_Created(t *testing.T) {
	router := newAuthRouter(&stubAuthService{
		resp: &models.AuthResponse{
			Token: "tok",
			User:  models.UserView{ID: "u1", Email: "new@test.local", Name: "New"},
		},
	})

	payload := `{"name":"New","email":"new@test.local","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusCreated, res.Code)
	body := decodeBody(t, res)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "tok", data["token"])

	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "new@test.local", user["email"])
	_, hasPassword := user["password_hash"]
	assert.False(t, hasPassword, "password hash must never be serialized")
}

func TestRegister_MissingFields(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"x@test.local"}`))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
	body := decodeBody(t, res)
	assert.Equal(t, "Please provide name, email and password", body["error"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router := newAuthRouter(&stubAuthService{err: apperrors.ErrEmailTaken})

	payload := `{"name":"Dup","email":"dup@test.local","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
	body := decodeBody(t, res)
	assert.Equal(t, "user with this email already exists", body["error"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := newAuthRouter(&stubAuthService{err: apperrors.ErrInvalidCredentials})

	payload := `{"email":"who@test.local","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusUnauthorized, res.Code)
	body := decodeBody(t, res)
	assert.Equal(t, "invalid email or password", body["error"])
}

func TestMe_GoneUser(t *testing.T) {
	router := newAuthRouter(&stubAuthService{err: apperrors.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusNotFound, res.Code)
	body := decodeBody(t, res)
	assert.Equal(t, "User not found", body["error"])
}
