package postgres

import (
	"context"
	"fmt"

	"github.com/nutallis/nutallis-api/internal/domain/entity"
	"github.com/nutallis/nutallis-api/internal/domain/repository"
)

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

// FinanceRepo implementação do porto FinanceRepository sobre PostgreSQL.
// O banco guarda só os lançamentos; o conjunto de caixinhas vive em código
// (entity.FinanceBoxes).
type FinanceRepo struct {
	q Querier
}

// NewFinanceRepository constrói o adaptador de persistência das caixinhas.
func NewFinanceRepository(q Querier) *FinanceRepo {
	return &FinanceRepo{q: q}
}

// AddEntry persiste um lançamento.
func (r *FinanceRepo) AddEntry(ctx context.Context, e *entity.FinanceEntry) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO finance_entries (id, box_key, amount_cents, reference, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.BoxKey, e.AmountCents, e.Reference, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert finance entry: %w", err)
	}
	return nil
}

// SumByBox devolve o total em centavos por caixinha. Caixinhas sem
// lançamentos não aparecem no mapa.
func (r *FinanceRepo) SumByBox(ctx context.Context) (map[string]int64, error) {
	rows, err := r.q.Query(ctx, `
		SELECT box_key, COALESCE(SUM(amount_cents), 0)
		FROM finance_entries GROUP BY box_key`)
	if err != nil {
		return nil, fmt.Errorf("sum finance entries: %w", err)
	}
	defer rows.Close()
	sums := make(map[string]int64)
	for rows.Next() {
		var key string
		var total int64
		if err := rows.Scan(&key, &total); err != nil {
			return nil, fmt.Errorf("scan finance sum: %w", err)
		}
		sums[key] = total
	}
	return sums, rows.Err()
}
