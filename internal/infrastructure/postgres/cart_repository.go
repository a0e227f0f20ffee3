package postgres

import (
	"context"
	"fmt"

	"github.com/nutallis/nutallis-api/internal/domain/entity"
	"github.com/nutallis/nutallis-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementação do porto CartRepository sobre PostgreSQL. Cada linha
// carrega o snapshot de preço e peso congelado na adição.
type CartRepo struct {
	q Querier
}

// NewCartRepository constrói o adaptador de persistência do carrinho.
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// Add insere uma linha nova. Nunca mescla com linhas existentes: adições
// repetidas do mesmo produto viram linhas distintas.
func (r *CartRepo) Add(ctx context.Context, item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (id, user_id, product_id, name, image_url, category_name, price_per_kg_cents, weight_grams, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.UserID, item.ProductID, item.Name, item.ImageURL,
		item.CategoryName, item.PricePerKgCents, item.WeightGrams, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// ListByUser devolve as linhas do usuário na ordem de inserção.
func (r *CartRepo) ListByUser(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	query := `
		SELECT id, user_id, product_id, name, image_url, category_name, price_per_kg_cents, weight_grams, created_at
		FROM cart_items WHERE user_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var out []*entity.CartItem
	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(
			&it.ID, &it.UserID, &it.ProductID, &it.Name, &it.ImageURL,
			&it.CategoryName, &it.PricePerKgCents, &it.WeightGrams, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// Remove apaga uma linha do carrinho do usuário.
func (r *CartRepo) Remove(ctx context.Context, userID, itemID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM cart_items WHERE user_id = $1 AND id = $2`,
		userID, itemID,
	)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

// Clear esvazia o carrinho do usuário.
func (r *CartRepo) Clear(ctx context.Context, userID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
