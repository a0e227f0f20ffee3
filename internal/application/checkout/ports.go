// Package checkout fecha o pedido a partir do carrinho: cobra o gateway
// externo, persiste pedido e linhas numa transação, baixa o estoque em gramas
// e lança a venda na caixinha.
package checkout

import (
	"context"

	"github.com/nutallis/nutallis-api/internal/domain/entity"
	"github.com/nutallis/nutallis-api/internal/domain/repository"
)

// PaymentResult resultado da cobrança no gateway externo.
type PaymentResult struct {
	Approved      bool
	TransactionID string
	Reason        string // motivo da recusa, quando houver
}

// PaymentGateway porto para o provedor de pagamento externo (Pix, cartão).
// O provedor recebe valor e método e devolve aprovação ou recusa; retry e
// detalhes de rede são responsabilidade do adaptador.
type PaymentGateway interface {
	Charge(ctx context.Context, amountCents int64, method string) (*PaymentResult, error)
}

// TxRunner executa o fechamento do pedido numa transação única: pedido,
// baixa de estoque, lançamento financeiro e limpeza do carrinho, tudo ou nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		cartRepo repository.CartRepository,
		financeRepo repository.FinanceRepository,
	) error) error
}

// ReceiptGenerator porto para a geração do comprovante do pedido em PDF.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order, items []*entity.OrderItem, customer *entity.User) ([]byte, error)
}
