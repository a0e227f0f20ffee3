package dto

import "time"

// AddCartItemRequest entrada para adicionar uma linha ao carrinho. O peso vem
// do seletor já debounced no cliente; o preço é resolvido e congelado no servidor.
type AddCartItemRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	WeightGrams int64  `json:"weight_grams" validate:"min=1"`
}

// CartItemResponse linha do carrinho com o preço recalculado a partir do snapshot.
type CartItemResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	Name            string    `json:"name"`
	ImageURL        string    `json:"image_url"`
	CategoryName    string    `json:"category_name"`
	PricePerKgCents int64     `json:"price_per_kg_cents"`
	WeightGrams     int64     `json:"weight_grams"`
	PriceCents      int64     `json:"price_cents"`
	Price           string    `json:"price"` // formatado em BRL
	CreatedAt       time.Time `json:"created_at"`
}

// CartResponse carrinho completo com total.
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalCents int64              `json:"total_cents"`
	Total      string             `json:"total"` // formatado em BRL
}
