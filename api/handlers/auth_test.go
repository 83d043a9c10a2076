package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func doJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupAndLogin(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "/auth/signup/", map[string]string{
		"username": "IvanovII", "password": "testpassword",
		"first_name": "Иван", "last_name": "Иванов",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Повторная регистрация с тем же именем отклоняется
	w = doJSON(r, "/auth/signup/", map[string]string{"username": "IvanovII", "password": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "/auth/login/", map[string]string{"username": "IvanovII", "password": "testpassword"})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	// Токен пускает на закрытую страницу
	resp := doGet(r, "/new/", token)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := setupRouter(t)

	doJSON(r, "/auth/signup/", map[string]string{"username": "PetrovPP", "password": "secret"})

	w := doJSON(r, "/auth/login/", map[string]string{"username": "PetrovPP", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginPageAvailable(t *testing.T) {
	r := setupRouter(t)

	w := doGet(r, "/auth/login/", "")
	require.Equal(t, http.StatusOK, w.Code)
}
