// Package analytics contém os casos de uso do painel admin: sinais de
// reposição de estoque e totais das caixinhas financeiras.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nutallis/nutallis-api/internal/application/dto"
	"github.com/nutallis/nutallis-api/internal/domain/repository"
)

// ReorderUseCase calcula o ponto de pedido recomendado por produto a partir do
// consumo recente e sinaliza estoque baixo.
//
// Regra: soma-se o peso vendido por produto numa janela móvel de WindowDays;
// a média diária projetada por ProjectionDays vira o ponto recomendado
// (arredondado ao grama). O ponto explícito do cadastro, quando existe,
// prevalece sobre o recomendado. Produto está em alerta quando
// stock_grams <= ponto efetivo.
//
// Leitura pura: cada invocação é independente e idempotente; nada é persistido.
type ReorderUseCase struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository

	windowDays     int
	projectionDays int
	now            func() time.Time // injetável para teste determinístico
}

// NewReorderUseCase constrói o caso de uso. windowDays/projectionDays não
// positivos caem nos padrões da loja (14 e 7). now nulo usa time.Now.
func NewReorderUseCase(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	windowDays, projectionDays int,
	now func() time.Time,
) *ReorderUseCase {
	if windowDays <= 0 {
		windowDays = 14
	}
	if projectionDays <= 0 {
		projectionDays = 7
	}
	if now == nil {
		now = time.Now
	}
	return &ReorderUseCase{
		productRepo:    productRepo,
		orderRepo:      orderRepo,
		windowDays:     windowDays,
		projectionDays: projectionDays,
		now:            now,
	}
}

// WindowDays devolve o tamanho da janela em dias.
func (uc *ReorderUseCase) WindowDays() int { return uc.windowDays }

// Signals calcula o sinal de reposição de todos os produtos ativos.
// Produtos sem venda na janela têm ponto recomendado zero: só entram em alerta
// com estoque zerado ou com ponto explícito violado.
func (uc *ReorderUseCase) Signals(ctx context.Context) ([]dto.ReorderSignalDTO, error) {
	since := uc.now().AddDate(0, 0, -uc.windowDays)

	products, err := uc.productRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("reorder: listar produtos: %w", err)
	}
	sales, err := uc.orderRepo.SalesByProductSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("reorder: vendas da janela: %w", err)
	}

	soldByProduct := make(map[string]int64, len(sales))
	for _, s := range sales {
		soldByProduct[s.ProductID] += s.WeightGrams
	}

	window := decimal.NewFromInt(int64(uc.windowDays))
	projection := decimal.NewFromInt(int64(uc.projectionDays))

	signals := make([]dto.ReorderSignalDTO, 0, len(products))
	for _, p := range products {
		sold := soldByProduct[p.ID]
		recommended := decimal.NewFromInt(sold).
			Div(window).
			Mul(projection).
			Round(0).
			IntPart()

		effective := recommended
		explicit := p.ReorderPointGrams != nil
		if explicit {
			effective = *p.ReorderPointGrams
		}

		signals = append(signals, dto.ReorderSignalDTO{
			ProductID:             p.ID,
			Name:                  p.Name,
			StockGrams:            p.StockGrams,
			TotalSoldGrams:        sold,
			RecommendedPointGrams: recommended,
			EffectivePointGrams:   effective,
			ExplicitPoint:         explicit,
			LowStock:              p.StockGrams <= effective,
		})
	}
	return signals, nil
}

// LowStock devolve apenas os produtos em alerta, na ordem do catálogo.
func (uc *ReorderUseCase) LowStock(ctx context.Context) ([]dto.ReorderSignalDTO, error) {
	signals, err := uc.Signals(ctx)
	if err != nil {
		return nil, err
	}
	low := signals[:0]
	for _, s := range signals {
		if s.LowStock {
			low = append(low, s)
		}
	}
	return low, nil
}
