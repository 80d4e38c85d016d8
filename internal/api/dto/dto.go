package dto

import (
	"time"

	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
)

type CartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ProductResponse order service消費product service的回應
type ProductResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	Active        bool            `json:"active"`
}

// UserResponse order service消費user service的回應
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type OrderItemResponse struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	Status      model.OrderStatus   `json:"status"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"createdAt"`
}
