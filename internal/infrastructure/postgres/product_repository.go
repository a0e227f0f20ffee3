package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nutallis/nutallis-api/internal/domain"
	"github.com/nutallis/nutallis-api/internal/domain/entity"
	"github.com/nutallis/nutallis-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, slug, description, category_id, price_per_kg_cents, cost_per_kg_cents, stock_grams, reorder_point_grams, image_url, active, created_at, updated_at`

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL
// (aceita pool ou tx via Querier).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência de produtos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um novo produto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.CategoryID,
		p.PricePerKgCents, p.CostPerKgCents, p.StockGrams, p.ReorderPointGrams,
		p.ImageURL, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID busca um produto por ID. Devolve (nil, nil) se não existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getBy(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetBySlug busca um produto pelo slug.
func (r *ProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return r.getBy(ctx, `SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
}

func (r *ProductRepo) getBy(ctx context.Context, query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.CategoryID,
		&p.PricePerKgCents, &p.CostPerKgCents, &p.StockGrams, &p.ReorderPointGrams,
		&p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update grava o estado completo do produto (cadastro admin). Baixas
// incrementais de estoque usam AdjustStock, que é seguro sob concorrência.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, slug = $3, description = $4, category_id = $5,
		    price_per_kg_cents = $6, cost_per_kg_cents = $7, stock_grams = $8,
		    reorder_point_grams = $9, image_url = $10, active = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.CategoryID,
		p.PricePerKgCents, p.CostPerKgCents, p.StockGrams, p.ReorderPointGrams,
		p.ImageURL, p.Active, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// AdjustStock soma delta (em gramas) ao estoque, recusando saldos negativos.
// O guard na cláusula WHERE serializa baixas concorrentes no próprio banco.
func (r *ProductRepo) AdjustStock(ctx context.Context, productID string, deltaGrams int64) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products
		SET stock_grams = stock_grams + $2, updated_at = now()
		WHERE id = $1 AND stock_grams + $2 >= 0`,
		productID, deltaGrams,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// ListActive lista os produtos ativos da vitrine, por nome.
func (r *ProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE active ORDER BY name`)
}

// List lista todos os produtos com paginação (admin).
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Description, &p.CategoryID,
			&p.PricePerKgCents, &p.CostPerKgCents, &p.StockGrams, &p.ReorderPointGrams,
			&p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Delete remove um produto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
