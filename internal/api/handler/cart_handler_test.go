package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Suvam-Debnath/EcomTCS/internal/api/dto"
	"github.com/Suvam-Debnath/EcomTCS/internal/constants"
	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db/model"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartService struct {
	addResult    bool
	items        []model.CartItem
	removeResult bool
	clearCalls   int
}

func (f *fakeCartService) AddItem(ctx context.Context, userID string, req *dto.CartItemRequest) (bool, error) {
	return f.addResult, nil
}

func (f *fakeCartService) RemoveItem(ctx context.Context, userID, productID string) (bool, error) {
	return f.removeResult, nil
}

func (f *fakeCartService) GetCart(ctx context.Context, userID string) ([]model.CartItem, error) {
	return f.items, nil
}

func (f *fakeCartService) ClearCart(ctx context.Context, userID string) error {
	f.clearCalls++
	return nil
}

type fakeOrderService struct {
	created *dto.OrderResponse
	order   *dto.OrderResponse
}

func (f *fakeOrderService) CreateOrder(ctx context.Context, userID string) (*dto.OrderResponse, error) {
	return f.created, nil
}

func (f *fakeOrderService) GetOrder(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	return f.order, nil
}

func (f *fakeOrderService) GetOrdersByUserID(ctx context.Context, userID string) ([]dto.OrderResponse, error) {
	return nil, nil
}

func cartRouter(cart *fakeCartService, order *fakeOrderService) *chi.Mux {
	r := chi.NewRouter()
	cartHandler := NewCartHandler(cart)
	orderHandler := NewOrderHandler(order)

	r.Post("/api/cart", cartHandler.AddToCart)
	r.Get("/api/cart", cartHandler.GetCart)
	r.Delete("/api/cart", cartHandler.ClearCart)
	r.Delete("/api/cart/items/{productId}", cartHandler.RemoveFromCart)
	r.Post("/api/orders", orderHandler.CreateOrder)
	r.Get("/api/orders/{id}", orderHandler.GetOrder)
	return r
}

func TestAddToCartWithoutUserHeader(t *testing.T) {
	r := cartRouter(&fakeCartService{addResult: true}, &fakeOrderService{})

	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"productId":"1","quantity":2}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddToCartSuccess(t *testing.T) {
	r := cartRouter(&fakeCartService{addResult: true}, &fakeOrderService{})

	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"productId":"1","quantity":2}`))
	req.Header.Set(constants.UserIDHeader, "user1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Item added to cart", body["data"])
}

func TestAddToCartRejected(t *testing.T) {
	r := cartRouter(&fakeCartService{addResult: false}, &fakeOrderService{})

	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"productId":"99","quantity":2}`))
	req.Header.Set(constants.UserIDHeader, "user1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddToCartInvalidQuantity(t *testing.T) {
	r := cartRouter(&fakeCartService{addResult: true}, &fakeOrderService{})

	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"productId":"1","quantity":0}`))
	req.Header.Set(constants.UserIDHeader, "user1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveFromCartNotFound(t *testing.T) {
	r := cartRouter(&fakeCartService{removeResult: false}, &fakeOrderService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/42", nil)
	req.Header.Set(constants.UserIDHeader, "user1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveFromCartSuccess(t *testing.T) {
	r := cartRouter(&fakeCartService{removeResult: true}, &fakeOrderService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/42", nil)
	req.Header.Set(constants.UserIDHeader, "user1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	r := cartRouter(&fakeCartService{}, &fakeOrderService{created: nil})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	req.Header.Set(constants.UserIDHeader, "user1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Cart is empty", body["message"])
}

func TestCreateOrderSuccess(t *testing.T) {
	created := &dto.OrderResponse{
		ID:          "order-1",
		Status:      model.OrderStatusConfirmed,
		TotalAmount: decimal.NewFromInt(300),
		CreatedAt:   time.Now().UTC(),
	}
	r := cartRouter(&fakeCartService{}, &fakeOrderService{created: created})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	req.Header.Set(constants.UserIDHeader, "user1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data dto.OrderResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "order-1", body.Data.ID)
	assert.True(t, body.Data.TotalAmount.Equal(decimal.NewFromInt(300)))
}

func TestGetOrderNotFound(t *testing.T) {
	r := cartRouter(&fakeCartService{}, &fakeOrderService{order: nil})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
