package service

import (
	"context"

	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db"
	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db/model"
)

type IProductService interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint, product *model.Product) (*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	DeleteProduct(ctx context.Context, id uint) (bool, error)
	SearchProducts(ctx context.Context, keyword string) ([]model.Product, error)
}

type ProductService struct {
	productRepo db.IProductRepository
}

func NewProductService(productRepo db.IProductRepository) IProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProduct 新商品一律上架
func (s *ProductService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	product.Active = true
	return s.productRepo.CreateProduct(ctx, product)
}

// UpdateProduct 全欄位更新，商品不存在回傳nil
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, product *model.Product) (*model.Product, error) {
	existing, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	existing.Name = product.Name
	existing.Category = product.Category
	existing.Description = product.Description
	existing.Price = product.Price
	existing.ImageUrl = product.ImageUrl
	existing.StockQuantity = product.StockQuantity
	existing.Active = product.Active

	if err := s.productRepo.UpdateProduct(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	return s.productRepo.GetProductByID(ctx, id)
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.GetActiveProducts(ctx)
}

// DeleteProduct 下架不刪行
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) (bool, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}

	product.Active = false
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return false, err
	}
	return true, nil
}

func (s *ProductService) SearchProducts(ctx context.Context, keyword string) ([]model.Product, error) {
	return s.productRepo.SearchProducts(ctx, keyword)
}
