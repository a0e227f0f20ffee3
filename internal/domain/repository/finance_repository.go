package repository

import (
	"context"

	"github.com/nutallis/nutallis-api/internal/domain/entity"
)

// FinanceRepository porto de persistência para lançamentos das caixinhas.
type FinanceRepository interface {
	AddEntry(ctx context.Context, entry *entity.FinanceEntry) error
	// SumByBox devolve o total em centavos por box_key. Caixinhas sem
	// lançamentos simplesmente não aparecem no mapa.
	SumByBox(ctx context.Context) (map[string]int64, error)
}
