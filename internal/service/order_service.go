package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Suvam-Debnath/EcomTCS/internal/api/dto"
	"github.com/Suvam-Debnath/EcomTCS/internal/infra/producer"
	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db"
	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type IOrderService interface {
	CreateOrder(ctx context.Context, userID string) (*dto.OrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (*dto.OrderResponse, error)
	GetOrdersByUserID(ctx context.Context, userID string) ([]dto.OrderResponse, error)
}

type OrderService struct {
	cartService   ICartService
	orderRepo     db.IOrderRepository
	eventProducer producer.IOrderEventProducer
	logger        *zerolog.Logger
}

func NewOrderService(cartService ICartService, orderRepo db.IOrderRepository, eventProducer producer.IOrderEventProducer, logger *zerolog.Logger) IOrderService {
	return &OrderService{
		cartService:   cartService,
		orderRepo:     orderRepo,
		eventProducer: eventProducer,
		logger:        logger,
	}
}

// CreateOrder 把用戶目前的購物車轉成一張已確認訂單
// 空購物車回傳nil, nil，不寫任何東西
// 訂單寫入後才清空購物車；兩步之間掛掉會留下訂單跟未清的購物車，
// 重送下單只會因購物車已空而得到空結果
func (s *OrderService) CreateOrder(ctx context.Context, userID string) (*dto.OrderResponse, error) {
	items, err := s.cartService.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	// 快照購物車行項目並加總，之後購物車怎麼變都不影響這張訂單
	totalAmount := decimal.Zero
	orderItems := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		totalAmount = totalAmount.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		orderItems = append(orderItems, model.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order := &model.Order{
		OrderID:     uuid.New().String(),
		UserID:      userID,
		OrderItems:  orderItems,
		TotalAmount: totalAmount,
		Status:      model.OrderStatusConfirmed,
		OrderDate:   time.Now().UTC(),
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishOrderCreated(ctx, order)

	if err := s.cartService.ClearCart(ctx, userID); err != nil {
		// 訂單已成立，清空失敗只記log
		s.logger.Error().Err(err).Str("order_id", order.OrderID).Str("user_id", userID).Msg("failed to clear cart after order creation")
	}

	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) GetOrdersByUserID(ctx context.Context, userID string) ([]dto.OrderResponse, error) {
	orders, err := s.orderRepo.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resps := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resps = append(resps, toOrderResponse(&orders[i]))
	}
	return resps, nil
}

// 發布失敗不影響下單
func (s *OrderService) publishOrderCreated(ctx context.Context, order *model.Order) {
	if s.eventProducer == nil {
		return
	}

	evtItems := make([]producer.OrderEventItem, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		evtItems = append(evtItems, producer.OrderEventItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	evt := &producer.OrderCreatedEvent{
		OrderID:     order.OrderID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Items:       evtItems,
		OccurredAt:  order.OrderDate,
	}
	if err := s.eventProducer.PublishOrderCreated(ctx, evt); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.OrderID).Msg("failed to publish order created event")
	}
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return dto.OrderResponse{
		ID:          order.OrderID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Items:       items,
		CreatedAt:   order.OrderDate,
	}
}
