package entity

import "time"

// Status possíveis de um pedido.
const (
	OrderStatusPending    = "pending"
	OrderStatusPaid       = "paid"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// Métodos de pagamento aceitos.
const (
	PaymentMethodPix        = "pix"
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodDebitCard  = "debit_card"
)

// Order é um pedido fechado a partir do carrinho. TotalCents é a soma dos
// preços das linhas no momento do checkout.
type Order struct {
	ID            string
	UserID        string
	Status        string
	PaymentMethod string
	TotalCents    int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem é uma linha de pedido com o preço final já resolvido e congelado.
type OrderItem struct {
	ID              string
	OrderID         string
	ProductID       string
	Name            string
	PricePerKgCents int64
	WeightGrams     int64
	PriceCents      int64 // preço final da linha, calculado no checkout
	CreatedAt       time.Time
}

// ValidOrderStatus informa se s é um status de pedido conhecido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// ValidPaymentMethod informa se m é um método de pagamento aceito.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodPix, PaymentMethodCreditCard, PaymentMethodDebitCard:
		return true
	}
	return false
}
