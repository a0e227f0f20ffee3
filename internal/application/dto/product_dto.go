package dto

import "time"

// CreateProductRequest entrada para criar um produto (admin).
type CreateProductRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=200"`
	Slug              string `json:"slug"` // vazio = gerado a partir do nome
	Description       string `json:"description"`
	CategoryID        string `json:"category_id" validate:"required"`
	PricePerKgCents   int64  `json:"price_per_kg_cents" validate:"min=0"`
	CostPerKgCents    *int64 `json:"cost_per_kg_cents"`
	StockGrams        int64  `json:"stock_grams" validate:"min=0"`
	ReorderPointGrams *int64 `json:"reorder_point_grams"`
	ImageURL          string `json:"image_url"`
	Active            bool   `json:"active"`
}

// UpdateProductRequest entrada para atualizar um produto. Campos nulos não mudam.
type UpdateProductRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string `json:"description"`
	CategoryID        *string `json:"category_id"`
	PricePerKgCents   *int64  `json:"price_per_kg_cents" validate:"omitempty,min=0"`
	CostPerKgCents    *int64  `json:"cost_per_kg_cents"`
	StockGrams        *int64  `json:"stock_grams" validate:"omitempty,min=0"`
	ReorderPointGrams *int64  `json:"reorder_point_grams"`
	ImageURL          *string `json:"image_url"`
	Active            *bool   `json:"active"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Description       string    `json:"description"`
	CategoryID        string    `json:"category_id"`
	PricePerKgCents   int64     `json:"price_per_kg_cents"`
	PricePerKg        string    `json:"price_per_kg"` // formatado em BRL
	StockGrams        int64     `json:"stock_grams"`
	ReorderPointGrams *int64    `json:"reorder_point_grams,omitempty"`
	ImageURL          string    `json:"image_url"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// QuoteResponse preço resolvido para um par (produto, peso).
type QuoteResponse struct {
	ProductID    string `json:"product_id"`
	WeightGrams  int64  `json:"weight_grams"`
	DiscountRate string `json:"discount_rate"` // fração decimal, ex. "0.1"
	PriceCents   int64  `json:"price_cents"`
	Price        string `json:"price"` // formatado em BRL
}
