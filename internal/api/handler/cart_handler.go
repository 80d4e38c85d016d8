package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Suvam-Debnath/EcomTCS/internal/api"
	"github.com/Suvam-Debnath/EcomTCS/internal/api/dto"
	"github.com/Suvam-Debnath/EcomTCS/internal/constants"
	"github.com/Suvam-Debnath/EcomTCS/internal/service"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{cartService: cartService}
}

// userIDFromHeader - 所有購物車操作都以 X-User-ID 標頭識別使用者
func userIDFromHeader(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get(constants.UserIDHeader)
	if userID == "" {
		api.ErrorJSON(w, http.StatusBadRequest, "missing "+constants.UserIDHeader+" header")
		return "", false
	}
	return userID, true
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	var req dto.CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == "" || req.Quantity <= 0 {
		api.ErrorJSON(w, http.StatusBadRequest, "productId and a positive quantity are required")
		return
	}

	added, err := h.cartService.AddItem(r.Context(), userID, &req)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to add item to cart")
		return
	}
	if !added {
		api.ErrorJSON(w, http.StatusBadRequest, "Unable to add item to cart")
		return
	}
	api.SuccessJSON(w, http.StatusOK, "Item added to cart")
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	items, err := h.cartService.GetCart(r.Context(), userID)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to get cart")
		return
	}
	api.SuccessJSON(w, http.StatusOK, items)
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	productID := chi.URLParam(r, "productId")
	removed, err := h.cartService.RemoveItem(r.Context(), userID, productID)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to remove item from cart")
		return
	}
	if !removed {
		api.ErrorJSON(w, http.StatusNotFound, "item not found in cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	if err := h.cartService.ClearCart(r.Context(), userID); err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to clear cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
