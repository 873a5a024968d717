package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/auth"
	"storefront-backend/internal/handler"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/service"
)

func newTestHandler() (*handler.Handler, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	log := zerolog.Nop()
	issuer := auth.NewIssuer([]byte("test-secret"), time.Hour)

	authService := service.NewAuthService(store.Users(), issuer)
	productService := service.NewProductService(store.Products())
	orderService := service.NewOrderService(store.Orders(), store.Products())

	h := handler.NewHandler(
		handler.NewAuthHandler(authService, log),
		handler.NewProductHandler(productService, log),
		handler.NewOrderHandler(orderService, log),
	)
	return h, store
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	h, _ := newTestHandler()

	w := doJSON(t, h, http.MethodPost, "/register", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "pw123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID          int64  `json:"id"`
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Positive(t, resp.ID)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRegisterEndpoint_MissingField(t *testing.T) {
	h, _ := newTestHandler()

	w := doJSON(t, h, http.MethodPost, "/register", map[string]string{
		"email": "alice@example.com", "password": "pw123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	h, _ := newTestHandler()

	body := map[string]string{"name": "Alice", "email": "alice@example.com", "password": "pw123"}
	assert.Equal(t, http.StatusCreated, doJSON(t, h, http.MethodPost, "/register", body).Code)
	assert.Equal(t, http.StatusConflict, doJSON(t, h, http.MethodPost, "/register", body).Code)
}

func TestLoginEndpoint(t *testing.T) {
	h, _ := newTestHandler()

	doJSON(t, h, http.MethodPost, "/register", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "pw123",
	})

	w := doJSON(t, h, http.MethodPost, "/login", map[string]string{
		"email": "alice@example.com", "password": "pw123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp["name"])
	assert.Equal(t, "alice@example.com", resp["email"])
	assert.NotEmpty(t, resp["accessToken"])
}

// Both failure modes return 401 with the same body.
func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	h, _ := newTestHandler()

	doJSON(t, h, http.MethodPost, "/register", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "pw123",
	})

	wrongPassword := doJSON(t, h, http.MethodPost, "/login", map[string]string{
		"email": "alice@example.com", "password": "nope",
	})
	unknownEmail := doJSON(t, h, http.MethodPost, "/login", map[string]string{
		"email": "nobody@example.com", "password": "pw123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestGetUserEndpoint(t *testing.T) {
	h, _ := newTestHandler()

	doJSON(t, h, http.MethodPost, "/register", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "pw123",
	})

	w := doJSON(t, h, http.MethodGet, "/users/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp["name"])
	assert.NotContains(t, resp, "password", "digest must never be serialized")

	assert.Equal(t, http.StatusNotFound, doJSON(t, h, http.MethodGet, "/users/999", nil).Code)
}
