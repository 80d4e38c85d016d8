package db

import (
	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// 初始化product service schema
// 冪等性
func (d *DbDao) InitProductMigrate() error {
	return d.AutoMigrate(
		&model.Product{},
	)
}

// 初始化user service schema
// 冪等性
func (d *DbDao) InitUserMigrate() error {
	return d.AutoMigrate(
		&model.Address{},
		&model.User{},
	)
}

// 初始化order service schema
// 冪等性
func (d *DbDao) InitOrderMigrate() error {
	return d.AutoMigrate(
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	)
}
