package repository

import (
	"context"

	"github.com/nutallis/nutallis-api/internal/domain/entity"
)

// CartRepository porto de persistência para o carrinho. As linhas pertencem a
// um usuário; a ordem de inserção é preservada para exibição.
type CartRepository interface {
	Add(ctx context.Context, item *entity.CartItem) error
	ListByUser(ctx context.Context, userID string) ([]*entity.CartItem, error)
	Remove(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}
