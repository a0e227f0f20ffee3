package repository

import (
	"context"
	"time"

	"github.com/nutallis/nutallis-api/internal/domain/entity"
)

// ProductSales é o volume vendido de um produto, em gramas, dentro de uma
// janela. Resultado cru da consulta agregada; o use case de analytics o
// transforma em sinal de reposição.
type ProductSales struct {
	ProductID   string
	WeightGrams int64
}

// OrderRepository porto de persistência para pedidos e suas linhas.
type OrderRepository interface {
	// Create persiste o pedido e as linhas de forma atômica (mesma tx via Querier).
	Create(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error
	GetByID(ctx context.Context, id string) (*entity.Order, []*entity.OrderItem, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error

	// SalesByProductSince soma weight_grams por produto para linhas cujo pedido
	// foi criado a partir de since, excluindo pedidos cancelados e reembolsados.
	SalesByProductSince(ctx context.Context, since time.Time) ([]ProductSales, error)
}
