package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nutallis/nutallis-api/internal/application/dto"
	"github.com/nutallis/nutallis-api/internal/domain"
	"github.com/nutallis/nutallis-api/internal/domain/entity"
	"github.com/nutallis/nutallis-api/internal/domain/pricing"
	"github.com/nutallis/nutallis-api/internal/domain/repository"
	"github.com/nutallis/nutallis-api/pkg/currency"
	"github.com/nutallis/nutallis-api/pkg/logger"
)

// UseCase caso de uso do checkout.
type UseCase struct {
	txRunner  TxRunner
	cartRepo  repository.CartRepository
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	gateway   PaymentGateway
	receipts  ReceiptGenerator
	table     pricing.Table
	log       *logger.Logger
}

// NewUseCase constrói o caso de uso do checkout.
func NewUseCase(
	txRunner TxRunner,
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	gateway PaymentGateway,
	receipts ReceiptGenerator,
	table pricing.Table,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:  txRunner,
		cartRepo:  cartRepo,
		userRepo:  userRepo,
		orderRepo: orderRepo,
		gateway:   gateway,
		receipts:  receipts,
		table:     table,
		log:       log,
	}
}

// Checkout fecha o pedido do usuário:
//
//  1. lê o carrinho e resolve o preço de cada linha a partir do snapshot;
//  2. cobra o gateway externo pelo total;
//  3. numa transação: cria pedido + linhas, baixa o estoque em gramas,
//     lança a venda na caixinha "vendas" e esvazia o carrinho.
//
// Pagamento recusado devolve domain.ErrPaymentRejected sem persistir nada.
func (uc *UseCase) Checkout(ctx context.Context, userID string, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	lines, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("checkout: carrinho: %w", err)
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		UserID:        userID,
		Status:        entity.OrderStatusPending,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	items := make([]*entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		priceCents := uc.table.PriceCents(line.PricePerKgCents, line.WeightGrams)
		items = append(items, &entity.OrderItem{
			ID:              uuid.New().String(),
			OrderID:         order.ID,
			ProductID:       line.ProductID,
			Name:            line.Name,
			PricePerKgCents: line.PricePerKgCents,
			WeightGrams:     line.WeightGrams,
			PriceCents:      priceCents,
			CreatedAt:       now,
		})
		order.TotalCents += priceCents
	}

	result, err := uc.gateway.Charge(ctx, order.TotalCents, in.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("checkout: gateway: %w", err)
	}
	if !result.Approved {
		uc.log.Warn().
			Str("user_id", userID).
			Int64("amount_cents", order.TotalCents).
			Str("reason", result.Reason).
			Msg("pagamento recusado")
		return nil, domain.ErrPaymentRejected
	}
	order.Status = entity.OrderStatusPaid

	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		cartRepo repository.CartRepository,
		financeRepo repository.FinanceRepository,
	) error {
		if err := orderRepo.Create(ctx, order, items); err != nil {
			return fmt.Errorf("criar pedido: %w", err)
		}
		for _, item := range items {
			if err := productRepo.AdjustStock(ctx, item.ProductID, -item.WeightGrams); err != nil {
				return fmt.Errorf("baixa de estoque de %s: %w", item.ProductID, err)
			}
		}
		entry := &entity.FinanceEntry{
			ID:          uuid.New().String(),
			BoxKey:      "vendas",
			AmountCents: order.TotalCents,
			Reference:   order.ID,
			CreatedAt:   now,
		}
		if err := financeRepo.AddEntry(ctx, entry); err != nil {
			return fmt.Errorf("lançamento da venda: %w", err)
		}
		if err := cartRepo.Clear(ctx, userID); err != nil {
			return fmt.Errorf("limpar carrinho: %w", err)
		}
		return nil
	})
	if err != nil {
		// A cobrança já aconteceu; o estorno é tratado fora (conciliação).
		uc.log.Error().Err(err).Str("order_id", order.ID).Msg("falha ao persistir pedido pago")
		return nil, err
	}

	uc.log.Info().
		Str("order_id", order.ID).
		Str("user_id", userID).
		Int64("total_cents", order.TotalCents).
		Msg("pedido fechado")

	return toOrderResponse(order, items), nil
}

// ReceiptPDF gera o comprovante em PDF de um pedido existente.
func (uc *UseCase) ReceiptPDF(ctx context.Context, orderID string) ([]byte, error) {
	order, items, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.userRepo.GetByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	return uc.receipts.GenerateReceipt(ctx, order, items, customer)
}

func toOrderResponse(order *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		TotalCents:    order.TotalCents,
		Total:         currency.FormatBRL(order.TotalCents),
		CreatedAt:     order.CreatedAt,
	}
	for _, item := range items {
		out.Items = append(out.Items, dto.OrderItemResponse{
			ID:              item.ID,
			ProductID:       item.ProductID,
			Name:            item.Name,
			PricePerKgCents: item.PricePerKgCents,
			WeightGrams:     item.WeightGrams,
			PriceCents:      item.PriceCents,
			Price:           currency.FormatBRL(item.PriceCents),
		})
	}
	return out
}
