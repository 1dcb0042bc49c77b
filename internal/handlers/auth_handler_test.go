package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-tracker-api/internal/database"
	"task-tracker-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r := gin.New()
	r.POST("/api/register", Register)
	r.POST("/api/login", Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/api/register", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var reg LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	require.NotEmpty(t, reg.Token)
	require.NotEmpty(t, reg.UserID)

	w = postJSON(t, r, "/api/login", map[string]string{
		"username": "alice",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	require.Equal(t, reg.UserID, login.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/api/register", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/login", map[string]string{
		"username": "alice",
		"password": "not-the-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/api/login", map[string]string{
		"username": "ghost",
		"password": "whatever",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/api/register", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/register", map[string]string{
		"username": "alice",
		"email":    "other@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_ShortPassword(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/api/register", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
