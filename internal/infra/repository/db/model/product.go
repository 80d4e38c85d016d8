package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID     uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"not null;type:varchar(100)" json:"name"`
	Category      string          `gorm:"type:varchar(50)" json:"category"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stockQuantity"`
	ImageUrl      string          `gorm:"type:varchar(255)" json:"imageUrl"`
	Active        bool            `gorm:"not null;default:true" json:"active"`
	BaseModel     `json:"-"`
}
