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

type OrderHandler struct {
	svc *service.OrderService
	log zerolog.Logger
}

func NewOrderHandler(svc *service.OrderService, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: log}
}

type createOrderRequest struct {
	User struct {
		ID int64 `json:"id"`
	} `json:"user"`
	CartList   []model.CartItem `json:"cartList"`
	AmountPaid float64          `json:"amount_paid"`
	Reference  string           `json:"orders_id"`
	Quantity   int              `json:"quantity"`
}

// Create responds with the store-assigned order id so the caller knows the
// order was actually persisted; a failed insert is a failed request.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, h.log)
		return
	}

	id, err := h.svc.Create(r.Context(), service.CreateOrderInput{
		UserID:     req.User.ID,
		Items:      req.CartList,
		AmountPaid: req.AmountPaid,
		Reference:  req.Reference,
		Quantity:   req.Quantity,
	})
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *OrderHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		respondError(w, h.log, apperr.ErrValidation)
		return
	}

	views, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, views)
}
