package db

import (
	"context"
	"errors"

	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	GetActiveProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	SearchProducts(ctx context.Context, keyword string) ([]model.Product, error)
}

type ProductRepo struct {
	dbDao *DbDao
}

func NewProductRepo(dbDao *DbDao) IProductRepository {
	return &ProductRepo{dbDao: dbDao}
}

// Create - 創建商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.dbDao.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Read - 根據ID查詢商品，不存在回傳nil
func (s *ProductRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.dbDao.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 查詢所有上架商品
func (s *ProductRepo) GetActiveProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.dbDao.WithContext(ctx).
		Where("active = ?", true).
		Find(&products).Error
	return products, err
}

// Update - 更新商品
func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.dbDao.WithContext(ctx).Save(product).Error
}

// Read - 關鍵字搜尋，比對名稱與分類
func (s *ProductRepo) SearchProducts(ctx context.Context, keyword string) ([]model.Product, error) {
	var products []model.Product
	pattern := "%" + keyword + "%"
	err := s.dbDao.WithContext(ctx).
		Where("active = ?", true).
		Where("name ILIKE ? OR category ILIKE ?", pattern, pattern).
		Find(&products).Error
	return products, err
}
