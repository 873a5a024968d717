package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/model"
	"storefront-backend/internal/service"
)

type ProductHandler struct {
	svc *service.ProductService
	log zerolog.Logger
}

func NewProductHandler(svc *service.ProductService, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: log}
}

func productID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context(), r.URL.Query().Get("name_like"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondError(w, h.log, apperr.ErrValidation)
		return
	}

	product, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		badRequest(w, h.log)
		return
	}

	if err := h.svc.Create(r.Context(), &product); err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"id": product.ID})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondError(w, h.log, apperr.ErrValidation)
		return
	}

	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		badRequest(w, h.log)
		return
	}
	product.ID = id

	if err := h.svc.Update(r.Context(), &product); err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondError(w, h.log, apperr.ErrValidation)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Featured(r.Context())
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}
