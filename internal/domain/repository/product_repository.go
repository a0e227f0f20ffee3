package repository

import (
	"context"

	"github.com/nutallis/nutallis-api/internal/domain/entity"
)

// ProductRepository define o porto de persistência para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// AdjustStock soma delta (negativo para baixa) ao estoque em gramas.
	// Retorna domain.ErrInsufficientStock se o resultado ficaria negativo.
	AdjustStock(ctx context.Context, productID string, deltaGrams int64) error
	ListActive(ctx context.Context) ([]*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
