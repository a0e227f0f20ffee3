package dto

import "time"

// CheckoutRequest entrada do checkout: só o método de pagamento; as linhas vêm
// do carrinho persistido do usuário.
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=pix credit_card debit_card"`
}

// UpdateOrderStatusRequest entrada admin para mudar o status de um pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse linha de pedido.
type OrderItemResponse struct {
	ID              string `json:"id"`
	ProductID       string `json:"product_id"`
	Name            string `json:"name"`
	PricePerKgCents int64  `json:"price_per_kg_cents"`
	WeightGrams     int64  `json:"weight_grams"`
	PriceCents      int64  `json:"price_cents"`
	Price           string `json:"price"` // formatado em BRL
}

// OrderResponse pedido com linhas.
type OrderResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"user_id"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	TotalCents    int64               `json:"total_cents"`
	Total         string              `json:"total"` // formatado em BRL
	Items         []OrderItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
