// Package cart implementa o carrinho de compras. Cada adição congela o par
// (peso, preço por kg) vigente; o total é sempre recalculado a partir desses
// snapshots, de modo que mudanças posteriores de catálogo não alteram linhas
// já criadas.
package cart

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
)

// UseCase casos de uso do carrinho.
type UseCase struct {
	cartRepo     repository.CartRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	table        pricing.Table
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	table pricing.Table,
) *UseCase {
	return &UseCase{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		table:        table,
	}
}

// Add cria uma nova linha com o peso pedido e o preço por kg vigente do
// catálogo. Adições repetidas do mesmo produto+peso criam linhas distintas,
// nunca mesclam quantidades.
func (uc *UseCase) Add(ctx context.Context, userID string, in dto.AddCartItemRequest) (*dto.CartItemResponse, error) {
	if in.WeightGrams < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.ErrNotFound
	}

	categoryName := ""
	if product.CategoryID != "" {
		if category, err := uc.categoryRepo.GetByID(ctx, product.CategoryID); err == nil && category != nil {
			categoryName = category.Name
		}
	}

	item := &entity.CartItem{
		ID:              uuid.New().String(),
		UserID:          userID,
		ProductID:       product.ID,
		Name:            product.Name,
		ImageURL:        product.ImageURL,
		CategoryName:    categoryName,
		PricePerKgCents: product.PricePerKgCents,
		WeightGrams:     in.WeightGrams,
		CreatedAt:       time.Now(),
	}
	if err := uc.cartRepo.Add(ctx, item); err != nil {
		return nil, err
	}
	resp := uc.toItemResponse(item)
	return &resp, nil
}

// Get devolve o carrinho do usuário com o total. O preço de cada linha é
// recalculado do snapshot (preço por kg + peso travados na adição), nunca do
// catálogo atual.
func (uc *UseCase) Get(ctx context.Context, userID string) (*dto.CartResponse, error) {
	items, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items))}
	for _, item := range items {
		resp := uc.toItemResponse(item)
		out.Items = append(out.Items, resp)
		out.TotalCents += resp.PriceCents
	}
	out.Total = currency.FormatBRL(out.TotalCents)
	return out, nil
}

// Remove apaga uma linha do carrinho do usuário.
func (uc *UseCase) Remove(ctx context.Context, userID, itemID string) error {
	return uc.cartRepo.Remove(ctx, userID, itemID)
}

// Clear esvazia o carrinho do usuário.
func (uc *UseCase) Clear(ctx context.Context, userID string) error {
	return uc.cartRepo.Clear(ctx, userID)
}

func (uc *UseCase) toItemResponse(item *entity.CartItem) dto.CartItemResponse {
	priceCents := uc.table.PriceCents(item.PricePerKgCents, item.WeightGrams)
	return dto.CartItemResponse{
		ID:              item.ID,
		ProductID:       item.ProductID,
		Name:            item.Name,
		ImageURL:        item.ImageURL,
		CategoryName:    item.CategoryName,
		PricePerKgCents: item.PricePerKgCents,
		WeightGrams:     item.WeightGrams,
		PriceCents:      priceCents,
		Price:           currency.FormatBRL(priceCents),
		CreatedAt:       item.CreatedAt,
	}
}
