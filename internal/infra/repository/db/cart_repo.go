package db

import (
	"context"
	"errors"

	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ICartRepository interface {
	GetCartItem(ctx context.Context, userID, productID string) (*model.CartItem, error)
	GetCartItems(ctx context.Context, userID string) ([]model.CartItem, error)
	UpsertCartItem(ctx context.Context, item *model.CartItem) error
	DeleteCartItem(ctx context.Context, userID, productID string) (bool, error)
	DeleteCartItems(ctx context.Context, userID string) error
}

type CartRepo struct {
	dbDao *DbDao
}

func NewCartRepo(dbDao *DbDao) ICartRepository {
	return &CartRepo{dbDao: dbDao}
}

// Read - 查詢單一購物車項目，不存在回傳nil
func (s *CartRepo) GetCartItem(ctx context.Context, userID, productID string) (*model.CartItem, error) {
	var item model.CartItem
	err := s.dbDao.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Read - 查詢用戶購物車，依建立順序
func (s *CartRepo) GetCartItems(ctx context.Context, userID string) ([]model.CartItem, error) {
	var items []model.CartItem
	err := s.dbDao.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error
	return items, err
}

// UpsertCartItem 原子upsert
// 同(user_id, product_id)已存在時數量累加、價格重新蓋上目前目錄價
// 靠唯一索引加ON CONFLICT，兩個併發寫入不會產生重複行
func (s *CartRepo) UpsertCartItem(ctx context.Context, item *model.CartItem) error {
	return s.dbDao.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
			"price":      gorm.Expr("excluded.price"),
			"updated_at": gorm.Expr("now()"),
		}),
	}).Create(item).Error
}

// Delete - 刪除單一購物車項目，回傳是否有刪到
func (s *CartRepo) DeleteCartItem(ctx context.Context, userID, productID string) (bool, error) {
	result := s.dbDao.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete - 清空用戶購物車，清空本來就空的購物車不算錯誤
func (s *CartRepo) DeleteCartItems(ctx context.Context, userID string) error {
	return s.dbDao.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}
