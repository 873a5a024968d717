package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productBody(id int64, name string) map[string]any {
	return map[string]any{
		"id":       id,
		"name":     name,
		"overview": "short text",
		"price":    12.5,
		"in_stock": true,
	}
}

func TestProductCRUDEndpoints(t *testing.T) {
	h, _ := newTestHandler()

	// Create with a caller-supplied id.
	assert.Equal(t, http.StatusCreated, doJSON(t, h, http.MethodPost, "/products", productBody(5, "Teapot")).Code)
	// Same id again conflicts.
	assert.Equal(t, http.StatusConflict, doJSON(t, h, http.MethodPost, "/products", productBody(5, "Other")).Code)
	// Missing id is rejected before the store is touched.
	assert.Equal(t, http.StatusBadRequest, doJSON(t, h, http.MethodPost, "/products", map[string]any{"name": "NoID"}).Code)

	w := doJSON(t, h, http.MethodGet, "/products/5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Teapot", got["name"])

	assert.Equal(t, http.StatusNotFound, doJSON(t, h, http.MethodGet, "/products/6", nil).Code)

	assert.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPut, "/products/5", productBody(5, "Kettle")).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, h, http.MethodPut, "/products/6", productBody(6, "Ghost")).Code)

	assert.Equal(t, http.StatusNoContent, doJSON(t, h, http.MethodDelete, "/products/5", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, h, http.MethodDelete, "/products/5", nil).Code)
}

func TestProductListEndpoint_PrefixSearch(t *testing.T) {
	h, _ := newTestHandler()

	require.Equal(t, http.StatusCreated, doJSON(t, h, http.MethodPost, "/products", productBody(1, "Teapot")).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, h, http.MethodPost, "/products", productBody(2, "Teacup")).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, h, http.MethodPost, "/products", productBody(3, "Kettle")).Code)

	w := doJSON(t, h, http.MethodGet, "/products?name_like=Tea", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var products []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)

	// No match still yields an empty array, not null.
	w = doJSON(t, h, http.MethodGet, "/products?name_like=Zzz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
