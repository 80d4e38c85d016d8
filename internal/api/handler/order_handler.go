package handler

import (
	"net/http"

	"github.com/Suvam-Debnath/EcomTCS/internal/api"
	"github.com/Suvam-Debnath/EcomTCS/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), userID)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to create order")
		return
	}
	if order == nil {
		api.ErrorJSON(w, http.StatusBadRequest, "Cart is empty")
		return
	}
	api.SuccessJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	order, err := h.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to get order")
		return
	}
	if order == nil {
		api.ErrorJSON(w, http.StatusNotFound, "order not found")
		return
	}
	api.SuccessJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	orders, err := h.orderService.GetOrdersByUserID(r.Context(), userID)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	api.SuccessJSON(w, http.StatusOK, orders)
}
