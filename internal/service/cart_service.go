package service

import (
	"context"
	"fmt"

	"github.com/Suvam-Debnath/EcomTCS/internal/api/dto"
	"github.com/Suvam-Debnath/EcomTCS/internal/infra/client"
	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db"
	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db/model"
	"github.com/rs/zerolog"
)

type ICartService interface {
	AddItem(ctx context.Context, userID string, req *dto.CartItemRequest) (bool, error)
	RemoveItem(ctx context.Context, userID, productID string) (bool, error)
	GetCart(ctx context.Context, userID string) ([]model.CartItem, error)
	ClearCart(ctx context.Context, userID string) error
}

type CartService struct {
	cartRepo      db.ICartRepository
	productClient client.IProductClient
	userClient    client.IUserClient
	logger        *zerolog.Logger
}

func NewCartService(cartRepo db.ICartRepository, productClient client.IProductClient, userClient client.IUserClient, logger *zerolog.Logger) ICartService {
	return &CartService{
		cartRepo:      cartRepo,
		productClient: productClient,
		userClient:    userClient,
		logger:        logger,
	}
}

// AddItem 驗證庫存與用戶後寫入購物車
// 驗證不過回傳false不動任何狀態，true表示購物車已反映這次加入
// 價格一律蓋上目前目錄價，新行舊行都一樣
func (s *CartService) AddItem(ctx context.Context, userID string, req *dto.CartItemRequest) (bool, error) {
	product, state := s.productClient.GetProductDetails(ctx, req.ProductID)
	switch state {
	case client.LookupNotFound:
		return false, nil
	case client.LookupUnavailable:
		// 連不上跟不存在收斂成同樣的拒絕，但log要分得出來
		s.logger.Warn().Str("product_id", req.ProductID).Msg("product service unavailable, rejecting add to cart")
		return false, nil
	}
	if !product.Active || product.StockQuantity < req.Quantity {
		return false, nil
	}

	_, state = s.userClient.GetUserDetails(ctx, userID)
	switch state {
	case client.LookupNotFound:
		return false, nil
	case client.LookupUnavailable:
		s.logger.Warn().Str("user_id", userID).Msg("user service unavailable, rejecting add to cart")
		return false, nil
	}

	item := &model.CartItem{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Price:     product.Price,
	}
	if err := s.cartRepo.UpsertCartItem(ctx, item); err != nil {
		return false, fmt.Errorf("failed to save cart item: %w", err)
	}
	return true, nil
}

// RemoveItem 有刪到東西才回傳true
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (bool, error) {
	return s.cartRepo.DeleteCartItem(ctx, userID, productID)
}

// GetCart 依建立順序回傳，沒有項目回空序列
func (s *CartService) GetCart(ctx context.Context, userID string) ([]model.CartItem, error) {
	return s.cartRepo.GetCartItems(ctx, userID)
}

// ClearCart 冪等，清空本來就空的購物車不算錯誤
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	return s.cartRepo.DeleteCartItems(ctx, userID)
}
