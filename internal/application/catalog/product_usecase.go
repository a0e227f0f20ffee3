package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutallis/nutallis-api/internal/application/dto"
	"github.com/nutallis/nutallis-api/internal/domain"
	"github.com/nutallis/nutallis-api/internal/domain/entity"
	"github.com/nutallis/nutallis-api/internal/domain/pricing"
	"github.com/nutallis/nutallis-api/internal/domain/repository"
	"github.com/nutallis/nutallis-api/pkg/currency"
	"github.com/nutallis/nutallis-api/pkg/slug"
)

// ProductUseCase casos de uso do catálogo: CRUD admin, vitrine e cotação de
// preço por peso. A tabela de desconto é injetada uma vez na construção; o
// use case nunca lê estado global.
type ProductUseCase struct {
	repo  repository.ProductRepository
	table pricing.Table
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository, table pricing.Table) *ProductUseCase {
	return &ProductUseCase{repo: repo, table: table}
}

// Create cria um produto. Slug vazio é gerado a partir do nome.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.PricePerKgCents < 0 || in.StockGrams < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderPointGrams != nil && *in.ReorderPointGrams < 0 {
		return nil, domain.ErrInvalidInput
	}
	s := in.Slug
	if s == "" {
		s = slug.Make(in.Name)
	}
	existing, _ := uc.repo.GetBySlug(ctx, s)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Slug:              s,
		Description:       in.Description,
		CategoryID:        in.CategoryID,
		PricePerKgCents:   in.PricePerKgCents,
		CostPerKgCents:    in.CostPerKgCents,
		StockGrams:        in.StockGrams,
		ReorderPointGrams: in.ReorderPointGrams,
		ImageURL:          in.ImageURL,
		Active:            in.Active,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtém um produto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetBySlug obtém um produto pela slug da vitrine.
func (uc *ProductUseCase) GetBySlug(ctx context.Context, s string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySlug(ctx, s)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update atualiza um produto. Campos nulos não mudam.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.PricePerKgCents != nil {
		if *in.PricePerKgCents < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.PricePerKgCents = *in.PricePerKgCents
	}
	if in.CostPerKgCents != nil {
		product.CostPerKgCents = in.CostPerKgCents
	}
	if in.StockGrams != nil {
		if *in.StockGrams < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.StockGrams = *in.StockGrams
	}
	if in.ReorderPointGrams != nil {
		if *in.ReorderPointGrams < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderPointGrams = in.ReorderPointGrams
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista produtos com paginação (admin).
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListActive lista os produtos visíveis na vitrine.
func (uc *ProductUseCase) ListActive(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete remove um produto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Quote resolve o preço de um par (produto, peso) com a tabela de desconto.
// Peso mínimo de 1g; abaixo disso a entrada é rejeitada na borda HTTP.
func (uc *ProductUseCase) Quote(ctx context.Context, productID string, weightGrams int64) (*dto.QuoteResponse, error) {
	if weightGrams < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	priceCents := uc.table.PriceCents(product.PricePerKgCents, weightGrams)
	return &dto.QuoteResponse{
		ProductID:    product.ID,
		WeightGrams:  weightGrams,
		DiscountRate: uc.table.RateFor(weightGrams).String(),
		PriceCents:   priceCents,
		Price:        currency.FormatBRL(priceCents),
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Slug:              p.Slug,
		Description:       p.Description,
		CategoryID:        p.CategoryID,
		PricePerKgCents:   p.PricePerKgCents,
		PricePerKg:        currency.FormatBRL(p.PricePerKgCents),
		StockGrams:        p.StockGrams,
		ReorderPointGrams: p.ReorderPointGrams,
		ImageURL:          p.ImageURL,
		Active:            p.Active,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
