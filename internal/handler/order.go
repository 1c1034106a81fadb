package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/order-service/internal/order"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	svc order.Service
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// CreateOrders handles POST /create-order. The body is a JSON array of
// order requests; the response is the created orders in input order.
func (h *OrderHandler) CreateOrders(w http.ResponseWriter, r *http.Request) {
	var requests []order.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&requests); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	orders, err := h.svc.CreateOrders(r.Context(), requests)
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to create orders")
		http.Error(w, "failed to create orders", http.StatusInternalServerError)
		return
	}

	resp := make([]order.CreatedOrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, order.NewCreatedOrderResponse(o))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("handler: failed to encode response")
	}
}

// ListOrders handles GET /orders.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListOrders(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to list orders")
		http.Error(w, "failed to list orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(views); err != nil {
		log.Error().Err(err).Msg("handler: failed to encode response")
	}
}
