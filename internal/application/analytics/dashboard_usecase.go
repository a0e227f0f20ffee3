package analytics

import (
	"context"
	"fmt"

	"github.com/nutallis/nutallis-api/internal/application/dto"
	"github.com/nutallis/nutallis-api/internal/domain/entity"
	"github.com/nutallis/nutallis-api/internal/domain/repository"
	"github.com/nutallis/nutallis-api/pkg/currency"
)

// DashboardUseCase monta a visão geral do painel admin: caixinhas financeiras
// e alertas de ponto de pedido.
//
// Fonte de dados: FinanceRepository e ReorderUseCase (consultas read-only).
type DashboardUseCase struct {
	financeRepo repository.FinanceRepository
	reorder     *ReorderUseCase
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(financeRepo repository.FinanceRepository, reorder *ReorderUseCase) *DashboardUseCase {
	return &DashboardUseCase{financeRepo: financeRepo, reorder: reorder}
}

// GetSummary busca caixinhas e sinais de estoque em paralelo e monta o DTO.
// Caixinhas sem lançamentos aparecem zeradas; o conjunto de caixinhas é fixo
// em código (entity.FinanceBoxes), o banco só acumula lançamentos.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type boxesResult struct {
		sums map[string]int64
		err  error
	}
	type reorderResult struct {
		low []dto.ReorderSignalDTO
		err error
	}

	boxesCh := make(chan boxesResult, 1)
	reorderCh := make(chan reorderResult, 1)

	go func() {
		sums, err := uc.financeRepo.SumByBox(ctx)
		boxesCh <- boxesResult{sums, err}
	}()
	go func() {
		low, err := uc.reorder.LowStock(ctx)
		reorderCh <- reorderResult{low, err}
	}()

	boxes := <-boxesCh
	signals := <-reorderCh

	if boxes.err != nil {
		return nil, fmt.Errorf("dashboard: caixinhas: %w", boxes.err)
	}
	if signals.err != nil {
		return nil, fmt.Errorf("dashboard: alertas de estoque: %w", signals.err)
	}

	known := entity.FinanceBoxes()
	boxDTOs := make([]dto.FinanceBoxDTO, 0, len(known))
	for _, box := range known {
		amount := boxes.sums[box.Key]
		boxDTOs = append(boxDTOs, dto.FinanceBoxDTO{
			Key:         box.Key,
			Label:       box.Label,
			AmountCents: amount,
			Amount:      currency.FormatBRL(amount),
		})
	}

	return &dto.DashboardSummaryDTO{
		Boxes:      boxDTOs,
		LowStock:   signals.low,
		WindowDays: uc.reorder.WindowDays(),
	}, nil
}
