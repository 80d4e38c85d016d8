package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem 購物車行項目
// (user_id, product_id)唯一，數量透過upsert累加
// 不用軟刪除，軟刪除的行會卡住唯一索引
type CartItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    string          `gorm:"not null;type:varchar(255);uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID string          `gorm:"not null;type:varchar(255);uniqueIndex:idx_cart_user_product" json:"productId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	CreatedAt time.Time       `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
