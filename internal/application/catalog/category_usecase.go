package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutallis/nutallis-api/internal/application/dto"
	"github.com/nutallis/nutallis-api/internal/domain"
	"github.com/nutallis/nutallis-api/internal/domain/entity"
	"github.com/nutallis/nutallis-api/internal/domain/repository"
	"github.com/nutallis/nutallis-api/pkg/slug"
)

// CategoryUseCase CRUD de categorias da vitrine.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create cria uma categoria. Slug vazio é gerado a partir do nome.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.UpsertCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := in.Slug
	if s == "" {
		s = slug.Make(in.Name)
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Slug:        s,
		Description: in.Description,
		SortOrder:   in.SortOrder,
		Active:      in.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update atualiza uma categoria existente.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpsertCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	category.Name = in.Name
	if in.Slug != "" {
		category.Slug = in.Slug
	}
	category.Description = in.Description
	category.SortOrder = in.SortOrder
	category.Active = in.Active
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista categorias, opcionalmente só as ativas (vitrine).
func (uc *CategoryUseCase) List(ctx context.Context, onlyActive bool) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Delete remove uma categoria por ID.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		SortOrder:   c.SortOrder,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
