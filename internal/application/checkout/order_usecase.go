package checkout

import (
	"context"

	"github.com/nutallis/nutallis-api/internal/application/dto"
	"github.com/nutallis/nutallis-api/internal/domain"
	"github.com/nutallis/nutallis-api/internal/domain/entity"
	"github.com/nutallis/nutallis-api/internal/domain/repository"
	"github.com/nutallis/nutallis-api/pkg/currency"
)

// OrderUseCase consultas e administração de pedidos já fechados.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase constrói o caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// GetByID devolve um pedido com linhas.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, items, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order, items), nil
}

// ListByUser lista os pedidos de um usuário (sem linhas).
func (uc *OrderUseCase) ListByUser(ctx context.Context, userID string, limit, offset int) (*dto.OrderListResponse, error) {
	orders, err := uc.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(orders, limit, offset), nil
}

// List lista todos os pedidos (admin, sem linhas).
func (uc *OrderUseCase) List(ctx context.Context, limit, offset int) (*dto.OrderListResponse, error) {
	orders, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(orders, limit, offset), nil
}

// UpdateStatus muda o status de um pedido (admin).
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	if !entity.ValidOrderStatus(status) {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateStatus(ctx, id, status)
}

func toOrderList(orders []*entity.Order, limit, offset int) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, dto.OrderResponse{
			ID:            order.ID,
			UserID:        order.UserID,
			Status:        order.Status,
			PaymentMethod: order.PaymentMethod,
			TotalCents:    order.TotalCents,
			Total:         currency.FormatBRL(order.TotalCents),
			CreatedAt:     order.CreatedAt,
		})
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
