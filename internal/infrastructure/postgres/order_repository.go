package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nutallis/nutallis-api/internal/domain/entity"
	"github.com/nutallis/nutallis-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementação do porto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository constrói o adaptador de persistência de pedidos.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste o pedido e as linhas. Atômico quando q é uma transação
// (caminho normal, via TxRunner).
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO orders (id, user_id, status, payment_method, total_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		order.ID, order.UserID, order.Status, order.PaymentMethod,
		order.TotalCents, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, item := range items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, name, price_per_kg_cents, weight_grams, price_cents, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, item.OrderID, item.ProductID, item.Name,
			item.PricePerKgCents, item.WeightGrams, item.PriceCents, item.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID busca um pedido e suas linhas. Devolve (nil, nil, nil) se não existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, []*entity.OrderItem, error) {
	var o entity.Order
	err := r.q.QueryRow(ctx, `
		SELECT id, user_id, status, payment_method, total_cents, created_at, updated_at
		FROM orders WHERE id = $1`, id).Scan(
		&o.ID, &o.UserID, &o.Status, &o.PaymentMethod, &o.TotalCents, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get order: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, product_id, name, price_per_kg_cents, weight_grams, price_cents, created_at
		FROM order_items WHERE order_id = $1 ORDER BY created_at, id`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.Name,
			&it.PricePerKgCents, &it.WeightGrams, &it.PriceCents, &it.CreatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, &it)
	}
	return &o, items, rows.Err()
}

// ListByUser lista os pedidos de um usuário, mais recentes primeiro.
func (r *OrderRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, error) {
	return r.list(ctx, `
		SELECT id, user_id, status, payment_method, total_cents, created_at, updated_at
		FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
}

// List lista todos os pedidos (admin), mais recentes primeiro.
func (r *OrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	return r.list(ctx, `
		SELECT id, user_id, status, payment_method, total_cents, created_at, updated_at
		FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var out []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.PaymentMethod, &o.TotalCents, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

// UpdateStatus muda o status de um pedido.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// SalesByProductSince soma as gramas vendidas por produto desde since,
// ignorando pedidos cancelados e reembolsados. Alimenta o sinal de reposição.
func (r *OrderRepo) SalesByProductSince(ctx context.Context, since time.Time) ([]repository.ProductSales, error) {
	rows, err := r.q.Query(ctx, `
		SELECT oi.product_id, COALESCE(SUM(oi.weight_grams), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= $1 AND o.status NOT IN ($2, $3)
		GROUP BY oi.product_id`,
		since, entity.OrderStatusCancelled, entity.OrderStatusRefunded,
	)
	if err != nil {
		return nil, fmt.Errorf("sales by product: %w", err)
	}
	defer rows.Close()
	var out []repository.ProductSales
	for rows.Next() {
		var s repository.ProductSales
		if err := rows.Scan(&s.ProductID, &s.WeightGrams); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
