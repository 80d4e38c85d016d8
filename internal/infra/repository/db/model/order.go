package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "CONFIRMED" // 已確認
)

type Order struct {
	OrderID     string          `gorm:"primaryKey;type:varchar(255)" json:"id"`
	UserID      string          `gorm:"not null;type:varchar(255);index" json:"userId"`
	OrderItems  []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"` // 一對多，級聯刪除
	TotalAmount decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"totalAmount"`
	Status      OrderStatus     `gorm:"not null;type:varchar(20)" json:"status"`
	OrderDate   time.Time       `gorm:"not null" json:"createdAt"`
	BaseModel   `json:"-"`
}

// OrderItem 下單時從購物車快照而來，與CartItem再無關聯
type OrderItem struct {
	OrderID   string          `gorm:"primaryKey;type:varchar(255)" json:"-"`
	ProductID string          `gorm:"primaryKey;type:varchar(255)" json:"productId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	BaseModel `json:"-"`
}
