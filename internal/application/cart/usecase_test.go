package cart_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutallis/nutallis-api/internal/application/cart"
	"github.com/nutallis/nutallis-api/internal/application/dto"
	"github.com/nutallis/nutallis-api/internal/domain"
	"github.com/nutallis/nutallis-api/internal/domain/entity"
	"github.com/nutallis/nutallis-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos portos de persistência
// ──────────────────────────────────────────────────────────────────────────────

type fakeCartRepo struct {
	items []*entity.CartItem
}

func (r *fakeCartRepo) Add(_ context.Context, item *entity.CartItem) error {
	copied := *item
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakeCartRepo) ListByUser(_ context.Context, userID string) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeCartRepo) Remove(_ context.Context, userID, itemID string) error {
	for i, item := range r.items {
		if item.UserID == userID && item.ID == itemID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCartRepo) Clear(_ context.Context, userID string) error {
	var kept []*entity.CartItem
	for _, item := range r.items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetBySlug(_ context.Context, s string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Slug == s {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) AdjustStock(_ context.Context, id string, delta int64) error {
	p := r.products[id]
	if p == nil {
		return domain.ErrNotFound
	}
	if p.StockGrams+delta < 0 {
		return domain.ErrInsufficientStock
	}
	p.StockGrams += delta
	return nil
}
func (r *fakeProductRepo) ListActive(_ context.Context) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type fakeCategoryRepo struct{}

func (fakeCategoryRepo) Create(_ context.Context, _ *entity.Category) error { return nil }
func (fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return &entity.Category{ID: id, Name: "Castanhas"}, nil
}
func (fakeCategoryRepo) List(_ context.Context, _ bool) ([]*entity.Category, error) {
	return nil, nil
}
func (fakeCategoryRepo) Update(_ context.Context, _ *entity.Category) error { return nil }
func (fakeCategoryRepo) Delete(_ context.Context, _ string) error           { return nil }

func newCastanha() *entity.Product {
	return &entity.Product{
		ID:              "prod-1",
		Name:            "Castanha-do-Pará",
		Slug:            "castanha-do-para",
		CategoryID:      "cat-1",
		PricePerKgCents: 8990,
		StockGrams:      5000,
		Active:          true,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

func newCartUseCase(products ...*entity.Product) (*cart.UseCase, *fakeProductRepo) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		productRepo.products[p.ID] = p
	}
	uc := cart.NewUseCase(&fakeCartRepo{}, productRepo, fakeCategoryRepo{}, pricing.DefaultTable())
	return uc, productRepo
}

// ──────────────────────────────────────────────────────────────────────────────

// O total do carrinho é estável frente a mudanças posteriores de catálogo:
// a linha usa o preço por kg congelado na adição.
func TestCart_SnapshotProtegeContraReajuste(t *testing.T) {
	ctx := context.Background()
	uc, productRepo := newCartUseCase(newCastanha())

	_, err := uc.Add(ctx, "user-1", dto.AddCartItemRequest{ProductID: "prod-1", WeightGrams: 1000})
	require.NoError(t, err)

	before, err := uc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 8091, before.TotalCents) // 8990 com 10% de desconto

	// reajuste de catálogo depois da adição
	productRepo.products["prod-1"].PricePerKgCents = 12000

	after, err := uc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 8091, after.TotalCents, "linha já criada não pode sentir o reajuste")
}

// Adições repetidas criam linhas distintas; nada é mesclado.
func TestCart_AdicoesNaoMesclam(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCartUseCase(newCastanha())

	for i := 0; i < 3; i++ {
		_, err := uc.Add(ctx, "user-1", dto.AddCartItemRequest{ProductID: "prod-1", WeightGrams: 250})
		require.NoError(t, err)
	}

	got, err := uc.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got.Items, 3)
	assert.EqualValues(t, 3*2248, got.TotalCents) // 8990*250/1000 = 2247.5 -> 2248 por linha
}

// A ordem de inserção é preservada na exibição.
func TestCart_OrdemDeInsercao(t *testing.T) {
	ctx := context.Background()
	second := newCastanha()
	second.ID = "prod-2"
	second.Name = "Mix Funcional"
	second.Slug = "mix-funcional"
	uc, _ := newCartUseCase(newCastanha(), second)

	_, err := uc.Add(ctx, "user-1", dto.AddCartItemRequest{ProductID: "prod-1", WeightGrams: 100})
	require.NoError(t, err)
	_, err = uc.Add(ctx, "user-1", dto.AddCartItemRequest{ProductID: "prod-2", WeightGrams: 500})
	require.NoError(t, err)

	got, err := uc.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "prod-1", got.Items[0].ProductID)
	assert.Equal(t, "prod-2", got.Items[1].ProductID)
}

func TestCart_Validacoes(t *testing.T) {
	ctx := context.Background()
	inactive := newCastanha()
	inactive.ID = "prod-off"
	inactive.Active = false
	uc, _ := newCartUseCase(newCastanha(), inactive)

	_, err := uc.Add(ctx, "user-1", dto.AddCartItemRequest{ProductID: "prod-1", WeightGrams: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Add(ctx, "user-1", dto.AddCartItemRequest{ProductID: "inexistente", WeightGrams: 100})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Add(ctx, "user-1", dto.AddCartItemRequest{ProductID: "prod-off", WeightGrams: 100})
	assert.ErrorIs(t, err, domain.ErrNotFound, "produto inativo não entra no carrinho")
}

// Carrinhos de usuários diferentes são independentes.
func TestCart_IsolamentoPorUsuario(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCartUseCase(newCastanha())

	_, err := uc.Add(ctx, "user-1", dto.AddCartItemRequest{ProductID: "prod-1", WeightGrams: 250})
	require.NoError(t, err)
	_, err = uc.Add(ctx, "user-2", dto.AddCartItemRequest{ProductID: "prod-1", WeightGrams: 1000})
	require.NoError(t, err)

	cart1, err := uc.Get(ctx, "user-1")
	require.NoError(t, err)
	cart2, err := uc.Get(ctx, "user-2")
	require.NoError(t, err)

	assert.EqualValues(t, 2248, cart1.TotalCents)
	assert.EqualValues(t, 8091, cart2.TotalCents)

	require.NoError(t, uc.Clear(ctx, "user-1"))
	cart1, err = uc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart1.Items)
	cart2, err = uc.Get(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, cart2.Items, 1)
}
